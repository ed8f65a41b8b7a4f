package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gearhub/gearhub/internal/api"
	"github.com/gearhub/gearhub/internal/catalog"
	"github.com/gearhub/gearhub/internal/config"
	"github.com/gearhub/gearhub/internal/db"
	"github.com/gearhub/gearhub/internal/images"
	"github.com/gearhub/gearhub/internal/web"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "listen address")
	store := flag.String("store", cfg.StoreDriver, "catalog store: sqlite or postgres")
	sqlitePath := flag.String("db", cfg.SQLitePath, "path to SQLite database file")
	dsn := flag.String("dsn", cfg.DatabaseURL, "postgres DSN for the remote store")
	uploads := flag.String("uploads", cfg.UploadMode, "image uploads: simulated or stored")
	flag.Parse()

	ctx := context.Background()

	// The local store and stored uploads share the SQLite database.
	var localDB *sql.DB
	openLocal := func() *sql.DB {
		if localDB != nil {
			return localDB
		}
		database, err := db.Open(*sqlitePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		if err := db.EnsureSchema(database); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
		localDB = database
		return localDB
	}

	var cat catalog.Catalog
	switch *store {
	case "sqlite":
		cat = catalog.NewSQLiteStore(openLocal())
	case "postgres":
		if *dsn == "" {
			log.Fatal("postgres store requires -dsn or DATABASE_URL")
		}
		if err := catalog.MigratePostgres(*dsn); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		pg, err := catalog.NewPostgresStore(ctx, *dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		if err := pg.Ping(ctx); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		cat = pg
	default:
		log.Fatalf("Unknown store %q (want sqlite or postgres)", *store)
	}

	var acq images.Acquirer
	switch *uploads {
	case "simulated":
		acq = images.NewSimulated()
	case "stored":
		acq = images.NewStored(openLocal())
	default:
		log.Fatalf("Unknown upload mode %q (want simulated or stored)", *uploads)
	}

	if localDB != nil {
		defer localDB.Close()
	}

	// Set up routers.
	apiRouter := api.NewRouter(cat)
	webRouter, err := web.NewRouter(cat, acq, localDB)
	if err != nil {
		log.Fatalf("Failed to set up web router: %v", err)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(mux)

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
