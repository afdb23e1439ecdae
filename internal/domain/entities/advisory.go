package entities

import (
	"strconv"
	"strings"
)

type AdvisoryKind string

const (
	AdvisoryKindPartHint AdvisoryKind = "part_hint"
	AdvisoryKindSummary  AdvisoryKind = "summary"
)

// AdvisoryOutcome is what happened to one advisory input or request.
type AdvisoryOutcome string

const (
	AdvisoryDispatched AdvisoryOutcome = "dispatched"
	AdvisoryApplied    AdvisoryOutcome = "applied"
	AdvisoryStale      AdvisoryOutcome = "stale"
	AdvisoryFailed     AdvisoryOutcome = "failed"
	AdvisoryFallback   AdvisoryOutcome = "fallback"
	AdvisoryCancelled  AdvisoryOutcome = "cancelled"
)

// AdvisoryState is the user-visible advisory text for one kind.
type AdvisoryState struct {
	Text    string `json:"text"`
	Loading bool   `json:"loading"`
	Err     string `json:"error,omitempty"`
}

// AdvisorySnapshot is the subset of a draft an advisory request is built
// from. Two snapshots with the same Key describe the same request.
type AdvisorySnapshot struct {
	AreaKey    string
	Conditions []string
	OtherText  string

	// Summary only.
	Unit     string
	PartHint string
}

// Blank reports whether the snapshot carries nothing to ask about.
func (s AdvisorySnapshot) Blank() bool {
	return len(s.Conditions) == 0 && strings.TrimSpace(s.OtherText) == ""
}

func (s AdvisorySnapshot) Key() string {
	var b strings.Builder
	writeField := func(v string) {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	writeField(s.AreaKey)
	b.WriteString(strconv.Itoa(len(s.Conditions)))
	b.WriteByte('[')
	for _, c := range s.Conditions {
		writeField(c)
	}
	b.WriteByte(']')
	writeField(strings.TrimSpace(s.OtherText))
	writeField(s.Unit)
	writeField(s.PartHint)
	return b.String()
}
