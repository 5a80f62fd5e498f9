package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brd-studio/brd-backend/config"
	"github.com/brd-studio/brd-backend/internal/projects/repository"
	"github.com/brd-studio/brd-backend/internal/storage/jsonstore"
	"github.com/brd-studio/brd-backend/internal/storage/postgres"
	"github.com/brd-studio/brd-backend/internal/storage/rediscache"
)

// Stores is the selected storage backend plus its repositories.
type Stores struct {
	Projects  repository.ProjectRepository
	Documents repository.DocumentRepository
	// Backend is "json" or "postgres", for health reporting.
	Backend string
	// DB is non-nil only for the postgres backend.
	DB *postgres.Store

	redis *redis.Client
}

// OpenStores selects the backend from config: postgres when DB_DSN is
// set, the file-backed jsonstore otherwise. With REDIS_ADDR set, the
// document repository gets a read-through cache.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	stores := &Stores{}

	if cfg.Storage.DBDSN != "" {
		db, err := postgres.Open(ctx, cfg.Storage.DBDSN)
		if err != nil {
			return nil, err
		}
		stores.Backend = "postgres"
		stores.DB = db
		stores.Projects = db.Projects()
		stores.Documents = db.Documents()
	} else {
		fs, err := jsonstore.Open(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		stores.Backend = "json"
		stores.Projects = fs.Projects()
		stores.Documents = fs.Documents()
	}

	if cfg.Storage.RedisAddr != "" {
		rdb, err := openRedis(ctx, cfg.Storage.RedisAddr)
		if err != nil {
			return nil, err
		}
		stores.redis = rdb
		stores.Documents = rediscache.NewDocuments(stores.Documents, rdb, 0)
		log.Printf("[info] operation=bootstrap message=document cache enabled addr=%s", cfg.Storage.RedisAddr)
	}

	return stores, nil
}

// Close releases backend connections.
func (s *Stores) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.DB != nil {
		s.DB.Close()
	}
}

func openRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
