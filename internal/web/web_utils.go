package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderPage writes an embedded page with status 200.
// The body is the same byte slice on every call.
func (s *WebServer) renderPage(c *gin.Context, name string) {
	content, ok := s.pages[name]
	if !ok {
		s.renderError(c, http.StatusInternalServerError, "page not found in build: "+name)
		return
	}
	c.Data(http.StatusOK, getContentType(name), content)
}

// renderError logs and answers with a plain-text error
func (s *WebServer) renderError(c *gin.Context, statusCode int, errstring string) {
	log.Printf("[WEB]: Error %d on %s: %s", statusCode, c.Request.URL.Path, errstring)
	c.String(statusCode, http.StatusText(statusCode))
}
