// Web server for the final-assessment pages
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/unikl/final-assessment/internal/config"
	"github.com/unikl/final-assessment/internal/web"
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion
	mainConfig := config.NewDefaultConfig()
	webConfig := &mainConfig.Web
	log.Printf("[WEB]: Starting final-assessment web server (version: %s) on %s", appVersion, webConfig.ListenAddr())

	server := web.NewServer(webConfig)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		webServerErrChan <- server.Start()
	}()

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		if err != nil {
			log.Fatalf("[WEB]: Failed to start web server: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), webConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[WEB]: Error during shutdown: %v", err)
	} else {
		log.Printf("[WEB]: Graceful shutdown completed")
	}
}
