package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name string
		idea string
		want string
	}{
		{
			name: "title cases and concatenates",
			idea: "weather  app!!",
			want: "WeatherApp",
		},
		{
			name: "drops whole words past the cap",
			idea: "Simple todo list with categories",
			want: "SimpleTodoListWith",
		},
		{
			name: "strips non alphanumerics",
			idea: "a URL-shortener 4 devs",
			want: "AUrlShortener4Devs",
		},
		{
			name: "empty idea falls back",
			idea: "",
			want: FallbackAppName,
		},
		{
			name: "punctuation only falls back",
			idea: "!!! ??? ---",
			want: FallbackAppName,
		},
		{
			name: "single over-long word is truncated",
			idea: "supercalifragilisticexpialidocious",
			want: "Supercalifragilistic",
		},
		{
			name: "mixed case normalized per word",
			idea: "mY tODO app",
			want: "MyTodoApp",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveName(tc.idea))
		})
	}
}

func TestDeriveNameAlwaysUsable(t *testing.T) {
	ideas := []string{
		"", "   ", "@@@@", "build a notes app",
		"123 456", "Ümlaut idea", "a b c d e f g h i j k l m n o p",
	}
	for _, idea := range ideas {
		got := DeriveName(idea)
		assert.NotEmpty(t, got, "idea %q", idea)
		assert.LessOrEqual(t, len(got), maxAppNameLen, "idea %q", idea)
		for _, r := range got {
			assert.True(t, isAlnum(r), "idea %q produced non-alphanumeric %q", idea, r)
		}
		assert.Equal(t, got, DeriveName(idea), "idea %q not deterministic", idea)
	}
}
