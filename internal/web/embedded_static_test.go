package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListEmbeddedPages(t *testing.T) {
	req := require.New(t)

	pages, err := ListEmbeddedPages()

	req.NoError(err)
	req.ElementsMatch([]string{homePageFile, finalAssessmentPageFile}, pages)
}

func TestLoadEmbeddedPages(t *testing.T) {
	req := require.New(t)

	pages, err := loadEmbeddedPages()

	req.NoError(err)
	req.Len(pages, 2)
	req.Contains(string(pages[homePageFile]), "Hello World!")
	req.Contains(string(pages[finalAssessmentPageFile]), "We love UniKL!")
}

func TestGetContentType(t *testing.T) {
	testCases := map[string]string{
		"index.html": "text/html; charset=utf-8",
		"INDEX.HTM":  "text/html; charset=utf-8",
		"site.css":   "application/octet-stream",
		"blob":       "application/octet-stream",
		"image.png":  "application/octet-stream",
	}

	for name, expected := range testCases {
		require.Equal(t, expected, getContentType(name), name)
	}
}
