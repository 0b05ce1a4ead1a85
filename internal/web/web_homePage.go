package web

import "github.com/gin-gonic/gin"

// homePage handles "/": a heading and a button leading to /final-assessment
func (s *WebServer) homePage(c *gin.Context) {
	s.renderPage(c, homePageFile)
}
