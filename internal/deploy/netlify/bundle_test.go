package netlify

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markedFrontend = `===== src/App.jsx =====
function App() {
  return <h1>hello</h1>;
}
===== src/index.css =====
.extra { color: red; }
===== package.json =====
{"name": "demo"}
`

func readZip(t *testing.T, bundle []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(bundle), int64(len(bundle)))
	require.NoError(t, err)

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(content)
	}
	return files
}

func TestBuildBundle(t *testing.T) {
	bundle, err := buildBundle("WeatherApp", markedFrontend)
	require.NoError(t, err)

	files := readZip(t, bundle)
	require.Contains(t, files, "index.html")
	require.Contains(t, files, "_redirects")

	html := files["index.html"]
	assert.Contains(t, html, "<title>WeatherApp</title>")
	assert.Contains(t, html, "function App()")
	assert.Contains(t, html, ".extra { color: red; }")
	assert.NotContains(t, html, "package.json")
	assert.NotContains(t, html, "=====")

	assert.Equal(t, redirectsFile, files["_redirects"])
}

func TestSplitFrontend(t *testing.T) {
	jsx, css := splitFrontend(markedFrontend)
	assert.Contains(t, jsx, "function App()")
	assert.NotContains(t, jsx, ".extra")
	assert.Contains(t, css, ".extra { color: red; }")
	assert.NotContains(t, css, "function App()")
}

func TestSplitFrontendWithoutMarkers(t *testing.T) {
	raw := "function App() { return null; }"
	jsx, css := splitFrontend(raw)
	assert.Equal(t, raw, jsx)
	assert.Empty(t, strings.TrimSpace(css))
}
