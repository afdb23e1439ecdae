package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

var (
	ErrEmptyCatalog     = errors.New("fixture catalog has no categories")
	ErrDuplicateFixture = errors.New("duplicate fixture key")
)

type catalogFile struct {
	Categories []struct {
		Name     string             `yaml:"name"`
		Fixtures []entities.Fixture `yaml:"fixtures"`
	} `yaml:"categories"`
}

// Catalog is an immutable, in-memory FixtureCatalog.
type Catalog struct {
	categories []string
	byCategory map[string][]entities.Fixture
	byKey      map[string]entities.Fixture
}

var _ interfaces.IFixtureCatalog = (*Catalog)(nil)

// Default parses the catalog shipped with the service.
func Default() (*Catalog, error) {
	return Parse(defaultFixtures)
}

// Parse builds a catalog from YAML. Category order and fixture order are
// kept as written.
func Parse(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture catalog: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		byCategory: make(map[string][]entities.Fixture, len(f.Categories)),
		byKey:      make(map[string]entities.Fixture),
	}
	for _, cat := range f.Categories {
		name := strings.TrimSpace(cat.Name)
		c.categories = append(c.categories, name)
		for _, fx := range cat.Fixtures {
			fx.Key = strings.TrimSpace(fx.Key)
			fx.Category = name
			if _, dup := c.byKey[fx.Key]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateFixture, fx.Key)
			}
			if len(fx.Conditions) == 0 {
				fx.Conditions = []string{entities.ConditionOther}
			}
			c.byKey[fx.Key] = fx
			c.byCategory[name] = append(c.byCategory[name], fx)
		}
	}
	return c, nil
}

func (c *Catalog) ByKey(key string) (entities.Fixture, bool) {
	fx, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return entities.Fixture{}, false
	}
	return cloneFixture(fx), true
}

func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) ListByCategory(category string) []entities.Fixture {
	src := c.byCategory[category]
	out := make([]entities.Fixture, 0, len(src))
	for _, fx := range src {
		out = append(out, cloneFixture(fx))
	}
	return out
}

func (c *Catalog) Conditions(key string) []string {
	fx, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return []string{entities.ConditionOther}
	}
	out := make([]string, len(fx.Conditions))
	copy(out, fx.Conditions)
	return out
}

func (c *Catalog) PartHint(key string) string {
	return c.byKey[strings.TrimSpace(key)].PartHint
}

func cloneFixture(fx entities.Fixture) entities.Fixture {
	conds := make([]string, len(fx.Conditions))
	copy(conds, fx.Conditions)
	fx.Conditions = conds
	return fx
}
