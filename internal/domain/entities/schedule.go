package entities

import "time"

// SwapPref is the resident's preference when a neighbour asks to trade
// appointment windows. It only matters when SwapOK is set.
type SwapPref string

const (
	SwapPrefEarly SwapPref = "Early"
	SwapPrefLate  SwapPref = "Late"
)

func (p SwapPref) Valid() bool {
	return p == SwapPrefEarly || p == SwapPrefLate
}

const (
	MinPhotos = 2
	MaxPhotos = 4

	// ConditionOther marks a fixture vocabulary that accepts free text.
	ConditionOther = "Other"

	DateLayout        = "2006-01-02"
	BookingWindowDays = 7
)

// Slots are the fixed time-of-day windows a visit can be booked in.
var Slots = []string{"8–10 AM", "10–12 PM", "1–3 PM", "3–5 PM", "5–7 PM", "7–9 PM"}

// DefaultEditSlot is preselected when an order being edited has no slot.
var DefaultEditSlot = Slots[1]

func IsValidSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// DateChoices returns the bookable dates starting at today, in local
// calendar terms of now.
func DateChoices(now time.Time) []string {
	out := make([]string, 0, BookingWindowDays)
	for i := 0; i < BookingWindowDays; i++ {
		out = append(out, now.AddDate(0, 0, i).Format(DateLayout))
	}
	return out
}

func IsISODate(v string) bool {
	_, err := time.Parse(DateLayout, v)
	return err == nil
}
