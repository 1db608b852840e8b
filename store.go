package main

import (
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Clancy-dev/clancygraintracker/pkg/datastore"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
	"github.com/Clancy-dev/clancygraintracker/pkg/recyclebin"
	"github.com/Clancy-dev/clancygraintracker/pkg/userstore"
)

var (
	kvStore  kv.Store
	bin      *recyclebin.Bin
	appStore *datastore.Store
	users    *userstore.Store

	dataWatcher io.Closer
)

// initStores picks the storage backend from the environment and wires the
// data store, recycle bin and user store on top of it. DB_DSN selects the
// Postgres document table; otherwise documents live as JSON files under
// DATA_DIR (default "data").
func initStores() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		pg, err := kv.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("open postgres document store: %v", err)
		}
		kvStore = pg
	} else {
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		fs, err := kv.NewFileStore(dir)
		if err != nil {
			log.Fatalf("open file document store: %v", err)
		}
		kvStore = fs
	}

	bin = recyclebin.New(kvStore, logger)
	appStore, err = datastore.New(kvStore, bin, logger)
	if err != nil {
		log.Fatalf("load app data: %v", err)
	}
	users = userstore.New(kvStore, logger)
	if err := users.SeedDemoUsers(); err != nil {
		log.Printf("warning: seeding demo users failed: %v", err)
	}

	// With the file backend, DATA_WATCH=1 re-hydrates the in-memory document
	// when the file is rewritten by another process or a manual edit.
	if fs, ok := kvStore.(*kv.FileStore); ok && os.Getenv("DATA_WATCH") == "1" {
		w, err := fs.Watch(datastore.StorageKey, func() {
			if err := appStore.Reload(); err != nil {
				logger.Warn("reload after external data change failed", zap.Error(err))
			}
		})
		if err != nil {
			log.Printf("warning: data file watch unavailable: %v", err)
		} else {
			dataWatcher = w
		}
	}
}

func closeStores() {
	if dataWatcher != nil {
		_ = dataWatcher.Close()
	}
}
