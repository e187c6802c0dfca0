package main

import (
	"context"
	"log"

	"ai-catalog-be/internal/bootstrap"
	"ai-catalog-be/internal/config"
	"ai-catalog-be/internal/repository/memory"
	"ai-catalog-be/internal/server"
	"ai-catalog-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Storage and Seed Data
	store := memory.NewStore()
	if err := bootstrap.Seed(context.Background(), store, cfg); err != nil {
		log.Panicf("Unable to seed store: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(store, cfg)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Logger.Sync()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start consumer: %v", err)
	}

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
