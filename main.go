package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/janebaby34221-collab/Superapp/configs"
	"github.com/janebaby34221-collab/Superapp/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedSuperadmin(db, cfg); err != nil {
		log.Fatalf("seed superadmin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("🚀 Server running at", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, drain in-flight requests, then close the
	// store connection.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	stop()
	log.Println("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("✅ bye")
}
