package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/unikl/final-assessment/internal/config"
)

// NewServer creates a new web server instance.
// It panics if the embedded pages cannot be read, which only happens with a broken build.
func NewServer(webconfig *config.WebConfig) *WebServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// No reverse proxy in front: ClientIP is always the socket peer
	router.SetTrustedProxies(nil)
	router.Use(gin.Recovery())

	pages, err := loadEmbeddedPages()
	if err != nil {
		panic("Failed to load embedded pages: " + err.Error())
	}

	server := &WebServer{
		Router: router,
		Config: webconfig,
		pages:  pages,
	}

	router.Use(server.ApacheLogFormat())

	// Plain HTTP only, no SSL-specific headers
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	server.setupRoutes()

	server.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: webconfig.ReadHeaderTimeout,
	}
	return server
}

// setupRoutes configures all HTTP routes.
// Anything not registered here falls through to gin's default 404.
func (s *WebServer) setupRoutes() {
	s.Router.GET("/", s.homePage)
	s.Router.HEAD("/", s.homePage)
	s.Router.GET("/final-assessment", s.finalAssessmentPage)
	s.Router.HEAD("/final-assessment", s.finalAssessmentPage)
}

// Listen binds the configured address
func (s *WebServer) Listen() (net.Listener, error) {
	addr := s.Config.ListenAddr()
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	s.mux.Lock()
	s.listener = l
	s.mux.Unlock()
	return l, nil
}

// Serve accepts connections on l until Shutdown is called.
// A graceful shutdown returns nil.
func (s *WebServer) Serve(l net.Listener) error {
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start binds the listener, announces the address and serves
func (s *WebServer) Start() error {
	l, err := s.Listen()
	if err != nil {
		return err
	}
	log.Printf("Server is running at http://%s:%d", s.Config.DisplayHost, s.GetPort())
	return s.Serve(l)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the bound address, or "" before Listen
func (s *WebServer) Addr() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// GetPort returns the bound port once listening, otherwise the configured one
func (s *WebServer) GetPort() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.listener != nil {
		if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
			return tcpAddr.Port
		}
	}
	return s.Config.ListenPort
}

// ApacheLogFormat logs each request in Apache combined log format
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
