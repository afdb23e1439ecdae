package response

import "resident_service/internal/domain/entities"

type FixtureResponse struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Model      string   `json:"model"`
	Category   string   `json:"category"`
	AreaLabel  string   `json:"area_label"`
	Conditions []string `json:"conditions"`
	PartHint   string   `json:"part_hint,omitempty"`
	FreeText   bool     `json:"free_text"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func FromFixture(f entities.Fixture) FixtureResponse {
	return FixtureResponse{
		Key:        f.Key,
		Label:      f.Label,
		Model:      f.Model,
		Category:   f.Category,
		AreaLabel:  f.AreaLabel(),
		Conditions: f.Conditions,
		PartHint:   f.PartHint,
		FreeText:   f.AcceptsOther(),
	}
}

func FromFixtures(fixtures []entities.Fixture) []FixtureResponse {
	out := make([]FixtureResponse, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, FromFixture(f))
	}
	return out
}
