package web

import "github.com/gin-gonic/gin"

func (s *WebServer) finalAssessmentPage(c *gin.Context) {
	s.renderPage(c, finalAssessmentPageFile)
}
