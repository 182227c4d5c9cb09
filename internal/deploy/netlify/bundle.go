package netlify

import (
	"archive/zip"
	"bytes"
	"strings"
)

// Frontend artifacts are multi-file blobs separated by "===== path ====="
// marker lines. The deployable bundle only needs the App.jsx component and
// any extra CSS; they are inlined into a standalone HTML shell that loads
// React from a CDN.

const redirectsFile = "/* /index.html 200"

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>__APP_NAME__</title>
    <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
    <script src="https://unpkg.com/@babel/standalone/babel.min.js"></script>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
        }
        .app { display: flex; min-height: 100vh; }
        .sidebar {
            width: 280px;
            background: #1e293b;
            border-right: 1px solid #334155;
            padding: 24px;
        }
        .sidebar-header h2 { color: #fff; margin-bottom: 8px; }
        .main-content { flex: 1; padding: 32px; max-width: 1200px; }
        button {
            padding: 12px 24px;
            background: #3b82f6;
            color: white;
            border: none;
            border-radius: 8px;
            cursor: pointer;
            font-size: 14px;
            font-weight: 500;
        }
        button:hover { background: #2563eb; }
        input[type="text"] {
            padding: 12px 16px;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 8px;
            color: #e2e8f0;
            font-size: 14px;
            width: 100%;
        }
        input[type="text"]:focus { outline: none; border-color: #3b82f6; }
        __EXTRA_CSS__
    </style>
</head>
<body>
    <div id="root"></div>
    <script type="text/babel">
        const { useState, useEffect } = React;

        __APP_JSX__

        const root = ReactDOM.createRoot(document.getElementById('root'));
        root.render(<App />);
    </script>
</body>
</html>`

// buildBundle renders the standalone index.html for the frontend artifact
// and zips it together with a Netlify _redirects file.
func buildBundle(appName, frontend string) ([]byte, error) {
	appJSX, css := splitFrontend(frontend)
	html := strings.NewReplacer(
		"__APP_NAME__", appName,
		"__EXTRA_CSS__", css,
		"__APP_JSX__", appJSX,
	).Replace(htmlShell)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	index, err := zw.Create("index.html")
	if err != nil {
		return nil, err
	}
	if _, err := index.Write([]byte(html)); err != nil {
		return nil, err
	}

	redirects, err := zw.Create("_redirects")
	if err != nil {
		return nil, err
	}
	if _, err := redirects.Write([]byte(redirectsFile)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitFrontend extracts the App.jsx and index.css sections from a marked-up
// frontend blob. A blob without an App.jsx marker is used whole.
func splitFrontend(frontend string) (appJSX, css string) {
	var jsx, style strings.Builder
	inJSX, inCSS := false, false

	for _, line := range strings.Split(frontend, "\n") {
		switch {
		case strings.Contains(line, "===== src/App.jsx =====") || strings.Contains(line, "===== App.jsx ====="):
			inJSX, inCSS = true, false
			continue
		case strings.Contains(line, "===== src/index.css =====") || strings.Contains(line, "===== index.css ====="):
			inJSX, inCSS = false, true
			continue
		case strings.Contains(line, "====="):
			inJSX, inCSS = false, false
			continue
		}
		if inJSX {
			jsx.WriteString(line)
			jsx.WriteString("\n")
		} else if inCSS {
			style.WriteString(line)
			style.WriteString("\n")
		}
	}

	appJSX = jsx.String()
	if strings.TrimSpace(appJSX) == "" {
		appJSX = frontend
	}
	return appJSX, style.String()
}
