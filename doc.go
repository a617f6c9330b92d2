// Package prompts loads, caches, and renders prompt templates written in
// jinja-style syntax. Templates live either in a local directory of *.j2
// files with optional frontmatter metadata, or in a Supabase table with
// name/content/description/author columns; the backend is picked from the
// environment at construction time.
//
// # Basic usage
//
//	manager, err := prompts.New()
//	if err != nil { ... }
//
//	tpl, err := manager.LoadTemplate(ctx, "welcome")
//	if err != nil { ... }
//
//	out, err := manager.Render(tpl, map[string]any{"name": "Tom"})
//
// Rendering is strict: referencing a variable that is absent from the
// context, the globals, and any default filter fails the render.
//
// Compiled templates are cached in a bounded LRU keyed by name. The cache is
// never invalidated by source changes; call ClearCache to force re-reads.
package prompts
