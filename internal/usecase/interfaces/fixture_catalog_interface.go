package interfaces

import "resident_service/internal/domain/entities"

// IFixtureCatalog is a read-only lookup of the appliances a resident can
// report on.
type IFixtureCatalog interface {
	ByKey(key string) (entities.Fixture, bool)
	Categories() []string
	ListByCategory(category string) []entities.Fixture

	// Conditions returns the issue vocabulary of a fixture. Unknown keys get
	// a vocabulary holding only the free-text tag.
	Conditions(key string) []string

	// PartHint returns the static part suggestion of a fixture, or "" when
	// the catalog has none.
	PartHint(key string) string
}
