// Package storage opens the key-value medium selected by sys.Configs.Storage.Backend,
// connecting the redis client or the database first when the backend needs one.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
	"github.com/ribgsilva/notebook/persistence/v1/schema"
	"github.com/ribgsilva/notebook/platform/env"
	"github.com/ribgsilva/notebook/sys"
	"go.uber.org/zap"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
)

const (
	Memory = "memory"
	File   = "file"
	Redis  = "redis"
	MySQL  = "mysql"
	Blob   = "blob"
)

// LoadConfigs fills sys.Configs.Storage and the connection configs it depends on from env vars
func LoadConfigs(log *zap.SugaredLogger) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	sys.Configs.Storage.Backend = env.OrDefault(log, "STORAGE_BACKEND", File)
	sys.Configs.Storage.Key = env.OrDefault(log, "STORAGE_KEY", "notebook-notes")
	sys.Configs.Storage.FileDir = env.OrDefault(log, "STORAGE_FILE_DIR", filepath.Join(home, ".notebook"))
	sys.Configs.Storage.BucketURL = env.OrDefault(log, "STORAGE_BUCKET_URL", "mem://")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/notebook")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
}

// Open returns the configured medium and the func releasing whatever it holds
func Open(ctx context.Context, log *zap.SugaredLogger) (kv.Medium, func(), error) {
	log.Infow("storage", "backend", sys.Configs.Storage.Backend, "key", sys.Configs.Storage.Key)

	switch sys.Configs.Storage.Backend {
	case Memory:
		return kv.NewMemory(), func() {}, nil

	case File:
		f, err := kv.NewFile(sys.Configs.Storage.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil

	case Redis:
		rdb, err := ConnectRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		sys.R.Cache = rdb
		return kv.NewRedis(rdb, sys.Configs.Cache.OperationTimeout), func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("could not close redis conn gracefully: %s", err)
			}
		}, nil

	case MySQL:
		db, err := ConnectDatabase(ctx, "mysql", sys.Configs.Database.ConnectionURL)
		if err != nil {
			return nil, nil, err
		}
		if err := schema.Create(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		sys.R.Database = db
		return kv.NewSQL(db, sys.Configs.Database.OperationTimeout), func() {
			if err := db.Close(); err != nil {
				log.Errorf("could not close db conn gracefully: %s", err)
			}
		}, nil

	case Blob:
		bucket, err := kv.OpenBucket(ctx, sys.Configs.Storage.BucketURL)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewBlob(bucket), func() {
			if err := bucket.Close(); err != nil {
				log.Errorf("could not close bucket gracefully: %s", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", sys.Configs.Storage.Backend)
	}
}

// ConnectRedis dials and pings the configured redis
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     sys.Configs.Cache.ConnectionURL,
		Username: sys.Configs.Cache.User,
		Password: sys.Configs.Cache.Pass,
	})
	rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}

// ConnectDatabase opens and pings a database/sql connection
func ConnectDatabase(ctx context.Context, driver, url string) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}
