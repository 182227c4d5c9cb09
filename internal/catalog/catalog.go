// Package catalog holds the immutable template registry the generation
// engine selects from. The catalog is built once at process start and is
// read-only afterwards, so concurrent requests may use it without locking.
package catalog

import "fmt"

// PlaceholderToken is the literal substring inside template artifacts that
// the assembler replaces with the derived application name.
const PlaceholderToken = "{APP_NAME}"

// DefaultTemplateID is the fallback template used when no keyword matches.
const DefaultTemplateID = "todo"

// Template is a single catalog entry: the keywords that trigger its
// selection plus the four artifact slots. Artifact content is opaque data to
// the engine; the only thing the engine knows about it is the placeholder
// token.
type Template struct {
	ID       string   `json:"name"`
	Keywords []string `json:"keywords"`
	Frontend string   `json:"frontend"`
	Backend  string   `json:"backend"`
	Database string   `json:"database"`
	Deploy   string   `json:"deploy"`
}

// Artifacts is one full set of the four artifact slots, either raw (as
// stored in a template) or assembled (after placeholder substitution).
type Artifacts struct {
	Frontend string
	Backend  string
	Database string
	Deploy   string
}

// Artifacts returns the template's raw artifact slots.
func (t Template) Artifacts() Artifacts {
	return Artifacts{
		Frontend: t.Frontend,
		Backend:  t.Backend,
		Database: t.Database,
		Deploy:   t.Deploy,
	}
}

// CatalogError reports malformed template data at load time. It is fatal to
// process startup and never surfaces per-request.
type CatalogError struct {
	TemplateID string
	Reason     string
}

func (e *CatalogError) Error() string {
	if e.TemplateID == "" {
		return fmt.Sprintf("catalog: %s", e.Reason)
	}
	return fmt.Sprintf("catalog: template %q: %s", e.TemplateID, e.Reason)
}

// Catalog is the validated, immutable set of templates. Iteration order is
// registration order, which the matcher's tie-break contract depends on.
type Catalog struct {
	templates []Template
	byID      map[string]int
	defaultID string
}

// New validates the given templates and builds a catalog. The slice order
// becomes the catalog's registration order. It fails with a *CatalogError if
// a template duplicates an id, has no keywords, or the designated default id
// is not present.
func New(templates []Template, defaultID string) (*Catalog, error) {
	byID := make(map[string]int, len(templates))
	for i, t := range templates {
		if t.ID == "" {
			return nil, &CatalogError{Reason: fmt.Sprintf("template at index %d has empty id", i)}
		}
		if _, dup := byID[t.ID]; dup {
			return nil, &CatalogError{TemplateID: t.ID, Reason: "duplicate template id"}
		}
		if len(t.Keywords) == 0 {
			return nil, &CatalogError{TemplateID: t.ID, Reason: "empty keyword set"}
		}
		byID[t.ID] = i
	}
	if _, ok := byID[defaultID]; !ok {
		return nil, &CatalogError{TemplateID: defaultID, Reason: "default template not registered"}
	}
	return &Catalog{
		templates: templates,
		byID:      byID,
		defaultID: defaultID,
	}, nil
}

// Load builds the catalog from the built-in template set.
func Load() (*Catalog, error) {
	return New(builtins(), DefaultTemplateID)
}

// Templates returns the templates in registration order. The returned slice
// must not be modified.
func (c *Catalog) Templates() []Template {
	return c.templates
}

// Get looks a template up by id.
func (c *Catalog) Get(id string) (Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

// Default returns the designated fallback template.
func (c *Catalog) Default() Template {
	return c.templates[c.byID[c.defaultID]]
}

// DefaultID returns the id of the fallback template.
func (c *Catalog) DefaultID() string {
	return c.defaultID
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
