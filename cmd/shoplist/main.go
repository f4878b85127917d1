package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattjh/shoplist/internal/database"
	"github.com/mattjh/shoplist/internal/liststore"
	"github.com/mattjh/shoplist/internal/logging"
	"github.com/mattjh/shoplist/internal/metrics"
	"github.com/mattjh/shoplist/internal/persist"
	"github.com/mattjh/shoplist/internal/server"
	"github.com/mattjh/shoplist/internal/settings"
	"github.com/mattjh/shoplist/internal/storage"
)

func main() {
	port := os.Getenv("SHOPLIST_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SHOPLIST_DB_PATH")
	if dbPath == "" {
		dbPath = "shoplist.db"
	}

	logger := logging.Setup(os.Getenv("SHOPLIST_LOG_LEVEL"), os.Getenv("SHOPLIST_LOG_FORMAT"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	blobs := storage.NewStore(db)
	listStorage := storage.NewLists(blobs, logger.With("component", "storage"))
	store := liststore.New()

	// Hydrate once; the stored payload is trusted as-is.
	if lists := listStorage.Load(); lists != nil {
		store.SetLists(lists)
		metrics.HydrationsTotal.WithLabelValues("ok").Inc()
		logger.Info("hydrated lists", "count", len(lists))
	} else {
		metrics.HydrationsTotal.WithLabelValues("empty").Inc()
	}

	pipeline := persist.NewPipeline(store, listStorage, persist.DefaultWindow, logger.With("component", "persist"))
	prefs := settings.NewService(blobs, logger.With("component", "settings"))

	srv := server.New(db, store, prefs, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Shoplist running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}

	// A mutation inside the final debounce window must not die with
	// the process.
	pipeline.Flush()
	prefs.Flush()
}
