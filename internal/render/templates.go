package render

// pageTemplate is the Go html/template for each documentation page. The
// nav and content region ids are configurable so the gateway's injection
// pipeline and the template always agree on them.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav id="{{.NavID}}" class="top-nav">
    <a class="project-title" href="{{.BasePath}}index.html">{{.ProjectName}}</a>
    <span class="version-label">{{.Version}}</span>
  </nav>
  <div class="layout">
    <aside class="sidebar">
      {{.NavHTML}}
    </aside>
    <main id="{{.ContentID}}" class="content">
      <article class="page-content">
        {{.Content}}
      </article>
    </main>
  </div>
</body>
</html>`

// cssContent is the stylesheet written into every snapshot.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-nav: #1b1f2a;
  --text: #212529;
  --text-muted: #6c757d;
  --accent: #2563eb;
  --warn-bg: #fff3cd;
  --warn-border: #ffe69c;
  --ok: #198754;
  --stale: #b45309;
  --border: #dee2e6;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
}

.top-nav {
  display: flex;
  align-items: center;
  gap: 1rem;
  padding: 0.6rem 1.25rem;
  background: var(--bg-nav);
  color: #fff;
}

.top-nav .project-title {
  color: #fff;
  font-weight: 600;
  text-decoration: none;
}

.top-nav .version-label { color: #9aa4b2; font-size: 0.85rem; }

.layout { display: flex; }

.sidebar {
  width: 240px;
  flex-shrink: 0;
  padding: 1rem;
  border-right: 1px solid var(--border);
  font-size: 0.9rem;
}

.sidebar ul { list-style: none; padding-left: 0.9rem; margin: 0.25rem 0; }
.sidebar a { color: var(--text); text-decoration: none; }
.sidebar a.active { color: var(--accent); font-weight: 600; }
.sidebar .dir-label { color: var(--text-muted); font-weight: 600; }

.content { flex: 1; min-width: 0; padding: 1.5rem 2rem; }
.page-content { max-width: 60rem; }

.page-content pre {
  padding: 0.9rem;
  overflow-x: auto;
  border: 1px solid var(--border);
  border-radius: 6px;
}

.version-picker {
  display: flex;
  align-items: center;
  gap: 0.5rem;
  margin-left: auto;
  font-size: 0.85rem;
}

.version-picker select {
  padding: 0.2rem 0.4rem;
  border-radius: 4px;
  border: 1px solid var(--border);
}

.version-badge {
  padding: 0.1rem 0.5rem;
  border-radius: 999px;
  font-size: 0.75rem;
  font-weight: 600;
  background: #fff;
}

.version-badge.latest { color: var(--ok); }
.version-badge.outdated { color: var(--stale); }

.version-banner {
  margin: 0 0 1rem 0;
  padding: 0.6rem 1rem;
  background: var(--warn-bg);
  border: 1px solid var(--warn-border);
  border-radius: 6px;
  font-size: 0.9rem;
}

.version-banner a { color: var(--accent); }
`
