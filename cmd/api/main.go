package main

import (
	"context"
	"log"

	"github.com/mjuwandi/portfolio-backend/config"
	"github.com/mjuwandi/portfolio-backend/internal/bootstrap"
	"github.com/mjuwandi/portfolio-backend/internal/store"
)

const serviceName = "Portfolio Backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// A missing or unreachable store is not fatal: read endpoints
	// degrade to empty results and writes report the condition.
	var st store.Store = store.Unavailable()
	if cfg.Database.URL == "" {
		log.Println("DATABASE_URL not set, running without document store")
	} else {
		m, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{
			URL:      cfg.Database.URL,
			Database: cfg.Database.Name,
		})
		if err != nil {
			log.Printf("document store unreachable: %v", err)
		} else {
			st = m
			defer func() {
				if err := m.Close(ctx); err != nil {
					log.Printf("store close: %v", err)
				}
			}()
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Store:          st,
		DatabaseURLSet: cfg.Database.URL != "",
		DatabaseName:   cfg.Database.Name,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
