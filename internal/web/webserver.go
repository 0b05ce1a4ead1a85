// Package web provides the HTTP server for the final-assessment pages
package web

import (
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/unikl/final-assessment/internal/config"
)

const (
	homePageFile            = "index.html"
	finalAssessmentPageFile = "final-assessment.html"
)

// WebServer represents the web server
type WebServer struct {
	Router *gin.Engine
	Config *config.WebConfig

	pages      map[string][]byte // embedded pages, read-only after NewServer
	httpServer *http.Server

	mux      sync.Mutex
	listener net.Listener
}
