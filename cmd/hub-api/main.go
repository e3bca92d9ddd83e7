package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/arsurgical/hub-backend/conf"
	"github.com/arsurgical/hub-backend/db"
	"github.com/arsurgical/hub-backend/db/kvdb"
	kvredis "github.com/arsurgical/hub-backend/db/kvdb/impls/redis"
	"github.com/arsurgical/hub-backend/db/sqldb"
	"github.com/arsurgical/hub-backend/db/sqldb/impls/mysql"
	"github.com/arsurgical/hub-backend/db/sqldb/impls/pgsql"
	"github.com/arsurgical/hub-backend/db/sqldb/impls/sqlite"
	"github.com/arsurgical/hub-backend/dbsetup"
	"github.com/arsurgical/hub-backend/handlers"
	"github.com/arsurgical/hub-backend/servers"
)

const startupTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using process environment")
	}

	appRoot, err := os.Getwd()
	if err != nil {
		log.Fatalf("[ERROR] cannot determine working directory: %v", err)
	}
	core := conf.Load(appRoot)

	// every engine registers; conf picks which one runs
	pgsql.Register()
	sqlite.Register()
	mysql.Register()

	sqlConf := core.SQLDBConf()
	sqlClient, err := sqldb.New(sqlConf.Type, sqlConf)
	if err != nil {
		log.Fatalf("[ERROR] create sql client: %v", err)
	}
	if err := sqlClient.Init(); err != nil {
		log.Fatalf("[ERROR] init sql client (%s): %v", sqlConf.Type, err)
	}
	log.Printf("[INFO] sql engine: %s", sqlConf.Type)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	if err := dbsetup.Setup(ctx, sqlClient, dbsetup.Conf{
		AdminEmail:    core.AdminEmail,
		AdminPassword: core.AdminPassword,
	}); err != nil {
		// degraded startup: serve whatever data is already there
		log.Printf("[WARN] database setup incomplete: %v", err)
	}
	cancel()

	var cache kvdb.Client
	if kvConf := core.KVDBConf(); kvConf != nil {
		redisClient := &kvredis.Client{Conf: kvConf}
		if err := redisClient.Init(); err != nil {
			log.Printf("[WARN] redis unavailable, caching disabled: %v", err)
		} else {
			cache = redisClient
		}
	}

	api := handlers.NewAPI(sqlClient, cache, []byte(core.JWTSecret))

	srv := &http.Server{
		Addr:              core.Listen,
		Handler:           api.NewAPIRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	servers.RunWithGracefulShutdown(srv, func() {
		db.CloseQuietly("sqldb", sqlClient)
		if cache != nil {
			db.CloseQuietly("kvdb", cache)
		}
	})
}
