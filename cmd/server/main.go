package main

import (
	"context"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/cache"
	"github.com/JagtapGaurav/Matrimonial/internal/config"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	"github.com/JagtapGaurav/Matrimonial/internal/logger"
	"github.com/JagtapGaurav/Matrimonial/internal/server"
	"github.com/JagtapGaurav/Matrimonial/internal/service/account"
	"github.com/JagtapGaurav/Matrimonial/internal/service/admin"
	"github.com/JagtapGaurav/Matrimonial/internal/service/match"
	"github.com/JagtapGaurav/Matrimonial/internal/service/report"
	"github.com/JagtapGaurav/Matrimonial/internal/service/shortlist"
	"github.com/JagtapGaurav/Matrimonial/internal/session"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	sessions, err := session.NewManager(redisCache, cfg.Session.TTL)
	if err != nil {
		log.Error("failed to init session manager", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, sessions, log)

	registrars := []server.Registrar{
		account.NewService(appCtx),
		match.NewService(appCtx),
		shortlist.NewService(appCtx),
		report.NewService(appCtx),
		admin.NewService(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := server.StartHTTPServer(cfg, appCtx, registrars...); err != nil {
		log.Error("server stopped", "err", err)
	}
}
