package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/cache"
	"github.com/JagtapGaurav/Matrimonial/internal/session"
)

// AppContext holds shared dependencies (DB, Redis, Sessions, Logger, etc.)
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Sessions   *session.Manager
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, sessions *session.Manager, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Sessions:   sessions,
		Logger:     logger,
	}
}
