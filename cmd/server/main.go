package main

import (
	"flask-demo-go/internal/config"
	"flask-demo-go/internal/logger"
	"flask-demo-go/internal/server"
)

func main() {
	cfg := config.Load()

	srv := server.New(cfg)
	logger.Infof("Starting HTTP server on %s", cfg.Addr())
	if err := srv.Start(); err != nil {
		logger.Fatalf("HTTP server failed: %v", err)
	}
}
