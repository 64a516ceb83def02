package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/truthlens/truthlens-client/src/backend"
	"github.com/truthlens/truthlens-client/src/config"
	"github.com/truthlens/truthlens-client/src/session"
	"github.com/truthlens/truthlens-client/src/webclient"
	"github.com/truthlens/truthlens-client/src/webserver"
)

func main() {
	cfg := config.Load()

	api := backend.NewClient(cfg.BackendURL, webclient.NewDefault(cfg.HTTPTimeout))
	sess := session.New()

	router := webserver.New(api, sess)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("TruthLens client listening on %s (backend %s)", cfg.Port, cfg.BackendURL)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
