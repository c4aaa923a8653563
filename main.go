package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"construction_backend/internals/configs"
	database "construction_backend/internals/databases"
	"construction_backend/internals/helpers/dbtime"
	routes "construction_backend/internals/route"
	"construction_backend/internals/seeds"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}
	loc := dbtime.SetLocation(cfg.Timezone)
	log.Printf("[INFO] Attendance day boundary in %s", loc)

	// 🔌 DB connect + pool + migrate
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	database.TunePool(db, cfg.DBDriver)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("[ERROR] migrate: %v", err)
	}

	if cfg.SeedFile != "" {
		if err := seeds.RunAllSeeds(db, cfg.SeedFile); err != nil {
			log.Fatalf("[ERROR] seed: %v", err)
		}
	}

	app := routes.NewApp(db, cfg)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
	log.Println("[INFO] Server stopped")
}
