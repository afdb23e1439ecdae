package entities

// Fixture is an appliance or fitting a resident can report an issue on.
//
// Conditions is the fixed vocabulary of issue tags offered for the fixture.
// A vocabulary containing ConditionOther also accepts free text.
type Fixture struct {
	Key        string   `json:"key" yaml:"key"`
	Label      string   `json:"label" yaml:"label"`
	Model      string   `json:"model" yaml:"model"`
	Category   string   `json:"category" yaml:"-"`
	Conditions []string `json:"conditions" yaml:"conditions"`
	PartHint   string   `json:"part_hint,omitempty" yaml:"part_hint"`
}

// AreaLabel is the human label stored on drafts and orders.
func (f Fixture) AreaLabel() string {
	return f.Category + " · " + f.Label
}

func (f Fixture) AcceptsOther() bool {
	return HasTag(f.Conditions, ConditionOther)
}

func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
