package usecase

import (
	"fmt"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
)

const (
	PartHintOnSiteFallback = "Technician to diagnose on-site"
	PartHintSelectPrompt   = "Select conditions to get AI diagnosis"
	SummarySelectPrompt    = "Describe the issue to get troubleshooting tips"
	SummaryUnavailable     = "Unable to get tips right now. Please try again later."
	SummaryNoResponse      = "No response"
)

func describeIssue(s entities.AdvisorySnapshot) string {
	issues := "Not specified"
	if len(s.Conditions) > 0 {
		issues = strings.Join(s.Conditions, ", ")
	}
	if extra := strings.TrimSpace(s.OtherText); extra != "" {
		issues += "; extra details: " + extra
	}
	return issues
}

func fixtureOrUnknown(catalog interfaces.IFixtureCatalog, key string) entities.Fixture {
	fx, ok := catalog.ByKey(key)
	if !ok {
		return entities.Fixture{Key: key, Label: "appliance", Model: "unknown", Category: "unknown"}
	}
	return fx
}

func buildPartHintPrompt(catalog interfaces.IFixtureCatalog, s entities.AdvisorySnapshot) string {
	fx := fixtureOrUnknown(catalog, s.AreaKey)

	var b strings.Builder
	b.WriteString("You help a building maintenance team pick parts before a visit. ")
	b.WriteString("From the report below, name the parts or components that are likely to need replacing or checking.\n\n")
	fmt.Fprintf(&b, "Appliance: %s (model %s)\n", fx.Label, fx.Model)
	fmt.Fprintf(&b, "Area: %s\n", fx.Category)
	fmt.Fprintf(&b, "Reported issues: %s\n\n", describeIssue(s))
	b.WriteString("Reply with the part names only, with no explanation.")
	return b.String()
}

func buildSummaryPrompt(catalog interfaces.IFixtureCatalog, s entities.AdvisorySnapshot) string {
	fx := fixtureOrUnknown(catalog, s.AreaKey)

	unit := s.Unit
	if unit == "" {
		unit = "unknown"
	}
	parts := s.PartHint
	if parts == "" {
		parts = "to be diagnosed"
	}

	var b strings.Builder
	b.WriteString("You assist apartment residents while they wait for a maintenance visit.\n\n")
	b.WriteString("Fixtures on file for this building:\n")
	for _, cat := range catalog.Categories() {
		var items []string
		for _, f := range catalog.ListByCategory(cat) {
			items = append(items, fmt.Sprintf("%s (%s)", f.Label, f.Model))
		}
		fmt.Fprintf(&b, "%s: %s\n", cat, strings.Join(items, ", "))
	}
	fmt.Fprintf(&b, "\nThe resident of %s reported a problem with the %s (model %s) in the %s area.\n", unit, fx.Label, fx.Model, fx.Category)
	fmt.Fprintf(&b, "Reported issues: %s\n", describeIssue(s))
	fmt.Fprintf(&b, "Parts the technician may bring: %s\n\n", parts)
	b.WriteString("Give 2 or 3 short troubleshooting steps for this model that the resident can safely try before the technician arrives. ")
	b.WriteString("Keep it friendly and brief. If gas, electricity or a water leak is involved, put safety first and tell the resident to wait for the technician. ")
	b.WriteString("Reply with a numbered list of steps and nothing else.")
	return b.String()
}
