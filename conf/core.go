// Package conf holds the process configuration, loaded once from the
// environment at startup. Engine selection happens here and nowhere
// else: a present DATABASE_URL picks the production PostgreSQL engine,
// its absence picks the embedded SQLite engine with a fixed local file.
package conf

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/arsurgical/hub-backend/db/kvdb"
	"github.com/arsurgical/hub-backend/db/sqldb"
)

type Core struct {
	AppName string
	Listen  string // HTTP Server Listen IP:PORT Address
	AppRoot string

	DatabaseURL string // production engine DSN; empty selects the embedded engine
	SQLitePath  string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	RedisAddr string // optional; empty disables the catalog cache
	RedisPW   string
	RedisDB   int
}

// Load reads the environment. Every value has a development default so
// a bare `go run` serves from a local SQLite file.
func Load(appRoot string) *Core {
	c := &Core{
		AppName: "hub-api",
		AppRoot: appRoot,

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  envOr("SQLITE_PATH", filepath.Join(appRoot, "db.sqlite")),

		JWTSecret:     envOr("JWT_SECRET", "dev_jwt_secret_change_me"),
		AdminEmail:    envOr("ADMIN_EMAIL", "admin@arsurgical.com"),
		AdminPassword: envOr("ADMIN_PASSWORD", "admin123"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPW:   os.Getenv("REDIS_PASSWORD"),
	}
	c.Listen = ":" + envOr("PORT", "5000")
	if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		c.RedisDB = n
	}
	return c
}

// SQLDBConf - the one place engine selection is decided.
func (c *Core) SQLDBConf() *sqldb.Conf {
	if c.DatabaseURL != "" {
		return &sqldb.Conf{Type: "pgsql", DSN: c.DatabaseURL}
	}
	return &sqldb.Conf{Type: "sqlite", Path: c.SQLitePath}
}

// KVDBConf returns nil when no cache backend is configured.
func (c *Core) KVDBConf() *kvdb.Conf {
	if c.RedisAddr == "" {
		return nil
	}
	return &kvdb.Conf{Type: "redis", Addr: c.RedisAddr, PW: c.RedisPW, DB: c.RedisDB}
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
