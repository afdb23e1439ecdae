package entities

import "time"

// Draft is the in-progress booking as seen from outside the intake. It is
// a projection: the intake owns the step inputs and the advisory sessions
// own the advisory fields.
type Draft struct {
	ID        string    `json:"id,omitempty"`
	OrderNo   string    `json:"order_no,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`

	Unit       string   `json:"unit"`
	Category   string   `json:"category,omitempty"`
	AreaKey    string   `json:"area_key"`
	AreaLabel  string   `json:"area_label"`
	Photos     []string `json:"photos"`
	Conditions []string `json:"conditions"`
	OtherText  string   `json:"other_text"`
	Date       string   `json:"date"`
	Slot       string   `json:"slot"`
	SwapOK     bool     `json:"swap_ok"`
	SwapPref   SwapPref `json:"swap_pref"`
	RemindOn   bool     `json:"remind_on"`

	AdvisoryPartHint        string `json:"advisory_part_hint"`
	AdvisoryPartHintLoading bool   `json:"advisory_part_hint_loading"`
	AdvisorySummary         string `json:"advisory_summary"`
	AdvisorySummaryLoading  bool   `json:"advisory_summary_loading"`
	AdvisorySummaryError    string `json:"advisory_summary_error,omitempty"`
}
