package web

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed pages/*.html
var EmbeddedPagesFS embed.FS

// ListEmbeddedPages returns the names of all embedded pages
func ListEmbeddedPages() ([]string, error) {
	var pages []string
	err := fs.WalkDir(EmbeddedPagesFS, "pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			pages = append(pages, path.Base(p))
		}
		return nil
	})
	return pages, err
}

// loadEmbeddedPages reads every embedded page into memory, keyed by file name.
// The returned map is never written after this call.
func loadEmbeddedPages() (map[string][]byte, error) {
	names, err := ListEmbeddedPages()
	if err != nil {
		return nil, err
	}
	pages := make(map[string][]byte, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(EmbeddedPagesFS, path.Join("pages", name))
		if err != nil {
			return nil, err
		}
		pages[name] = content
	}
	return pages, nil
}

// getContentType returns the MIME type for an embedded file name
func getContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
