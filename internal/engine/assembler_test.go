package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptforge/internal/catalog"
)

func TestAssembleReplacesEveryOccurrence(t *testing.T) {
	raw := catalog.Artifacts{
		Frontend: "const title = '{APP_NAME}'; document.title = '{APP_NAME}';",
		Backend:  "app name: {APP_NAME}",
		Database: "-- schema for {APP_NAME}",
		Deploy:   "netlify deploy --site {APP_NAME}",
	}

	got := Assemble(raw, "WeatherApp")

	assert.Equal(t, "const title = 'WeatherApp'; document.title = 'WeatherApp';", got.Frontend)
	assert.Equal(t, "app name: WeatherApp", got.Backend)
	assert.Equal(t, "-- schema for WeatherApp", got.Database)
	assert.Equal(t, "netlify deploy --site WeatherApp", got.Deploy)
}

func TestAssembleLeavesNoPlaceholderInAnyTemplate(t *testing.T) {
	cat := mustCatalog(t)

	for _, tmpl := range cat.Templates() {
		got := Assemble(tmpl.Artifacts(), DeriveName("my "+tmpl.ID+" app"))
		for slot, content := range map[string]string{
			"frontend": got.Frontend,
			"backend":  got.Backend,
			"database": got.Database,
			"deploy":   got.Deploy,
		} {
			assert.False(t, strings.Contains(content, catalog.PlaceholderToken),
				"template %s slot %s still contains the placeholder", tmpl.ID, slot)
		}
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	cat := mustCatalog(t)

	raw := cat.Default().Artifacts()
	once := Assemble(raw, "TodoApp")
	twice := Assemble(once, "TodoApp")
	assert.Equal(t, once, twice)
}

func TestAssembleLeavesOtherTextAlone(t *testing.T) {
	raw := catalog.Artifacts{
		Frontend: "no placeholder here",
		Backend:  "APP_NAME without braces stays",
	}
	got := Assemble(raw, "Anything")
	assert.Equal(t, raw, got)
}
