package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltins(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cat.Len())
	assert.Equal(t, DefaultTemplateID, cat.DefaultID())

	def, ok := cat.Get(DefaultTemplateID)
	require.True(t, ok)
	assert.Equal(t, def, cat.Default())
}

func TestLoadBuiltinsArtifactsCarryPlaceholder(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	// Every artifact slot of every template must be non-empty and mention
	// the app name at least once, so substitution is observable everywhere.
	for _, tmpl := range cat.Templates() {
		a := tmpl.Artifacts()
		for slot, content := range map[string]string{
			"frontend": a.Frontend,
			"backend":  a.Backend,
			"database": a.Database,
			"deploy":   a.Deploy,
		} {
			assert.NotEmpty(t, content, "template %s slot %s", tmpl.ID, slot)
			assert.True(t, strings.Contains(content, PlaceholderToken),
				"template %s slot %s has no placeholder", tmpl.ID, slot)
		}
	}
}

func TestLoadBuiltinsRegistrationOrder(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	want := []string{
		"youtube", "invoice", "scraper", "todo", "url_shortener",
		"recipe", "expense", "notes", "weather", "quiz",
	}
	var got []string
	for _, tmpl := range cat.Templates() {
		got = append(got, tmpl.ID)
	}
	assert.Equal(t, want, got)
}

func TestNewValidation(t *testing.T) {
	valid := func(id string) Template {
		return Template{
			ID:       id,
			Keywords: []string{id},
			Frontend: "f", Backend: "b", Database: "d", Deploy: "y",
		}
	}

	tests := []struct {
		name      string
		templates []Template
		defaultID string
		wantErr   string
	}{
		{
			name:      "empty id",
			templates: []Template{valid("a"), {Keywords: []string{"x"}}},
			defaultID: "a",
			wantErr:   "empty id",
		},
		{
			name:      "duplicate id",
			templates: []Template{valid("a"), valid("a")},
			defaultID: "a",
			wantErr:   "duplicate",
		},
		{
			name:      "empty keywords",
			templates: []Template{{ID: "a"}},
			defaultID: "a",
			wantErr:   "empty keyword set",
		},
		{
			name:      "default not registered",
			templates: []Template{valid("a")},
			defaultID: "missing",
			wantErr:   "default template not registered",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.templates, tc.defaultID)
			require.Error(t, err)

			var catErr *CatalogError
			require.ErrorAs(t, err, &catErr)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestGetUnknownID(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, ok := cat.Get("no_such_template")
	assert.False(t, ok)
}
