package usecase

import (
	"strings"

	"resident_service/internal/domain/entities"
)

// Step guards are pure functions of the draft. They are evaluated on every
// read and every advance attempt and never cached.

// CanLeaveEvidence reports whether Step1 has a fixture and enough photos.
func CanLeaveEvidence(d entities.Draft) bool {
	return strings.TrimSpace(d.AreaKey) != "" && len(d.Photos) >= entities.MinPhotos
}

// CanLeaveDetails reports whether Step2 describes an issue and a visit
// window. Free text only counts when the vocabulary offers "Other".
func CanLeaveDetails(d entities.Draft, vocabulary []string) bool {
	described := len(d.Conditions) > 0 ||
		(entities.HasTag(vocabulary, entities.ConditionOther) && strings.TrimSpace(d.OtherText) != "")
	return described && d.Date != "" && d.Slot != ""
}

func CanSaveEdit(d entities.Draft) bool {
	return d.Date != "" && d.Slot != ""
}
