package request

import (
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase"
)

// AreaRequest selects a category, a fixture, or both. A fixture alone also
// selects its category.
type AreaRequest struct {
	Category   string `json:"category" binding:"required_without=FixtureKey"`
	FixtureKey string `json:"fixture_key"`
}

type PhotosRequest struct {
	Refs []string `json:"refs" binding:"required,min=1,max=4,dive,required,max=512"`
}

type ConditionsRequest struct {
	Conditions []string `json:"conditions" binding:"max=16,dive,required"`
	OtherText  string   `json:"other_text" binding:"max=500"`
}

// ScheduleRequest changes the visit window. Omitted fields stay as they are.
type ScheduleRequest struct {
	Date string `json:"date" binding:"omitempty,isodate"`
	Slot string `json:"slot" binding:"omitempty,slot"`
}

type PreferencesRequest struct {
	SwapOK   *bool   `json:"swap_ok"`
	SwapPref *string `json:"swap_pref" binding:"omitempty,swappref"`
	RemindOn *bool   `json:"remind_on"`
}

func (r PreferencesRequest) ToUpdate() usecase.PreferencesUpdate {
	u := usecase.PreferencesUpdate{SwapOK: r.SwapOK, RemindOn: r.RemindOn}
	if r.SwapPref != nil {
		pref := entities.SwapPref(strings.TrimSpace(*r.SwapPref))
		u.SwapPref = &pref
	}
	return u
}
