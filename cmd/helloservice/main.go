package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mstallmo/agentic-protos/src/database"
	"github.com/mstallmo/agentic-protos/src/server"
)

func main() {
	cfg := server.DefaultConfig()
	flag.StringVar(&cfg.ListenAddress, "addr", cfg.ListenAddress, "gRPC listen address")
	flag.StringVar(&cfg.MetricsAddress, "metrics-addr", cfg.MetricsAddress, "Prometheus metrics listen address")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path (:memory: for ephemeral)")
	flag.Parse()

	log.Printf("Connecting to SQLite database at %s", cfg.DatabasePath)
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}

	listCounters(db)

	metrics := server.NewMetrics()
	metrics.MustRegister(prometheus.DefaultRegisterer)
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddress, nil); err != nil {
			log.Printf("Metrics endpoint error: %v", err)
		}
	}()

	svc := server.NewHelloServiceServer(db, metrics)
	log.Printf("HelloService gRPC server starting on %s", cfg.ListenAddress)
	go func() {
		if err := server.StartServer(svc, cfg.ListenAddress); err != nil {
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down")
	if err := db.Close(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func listCounters(db *database.Database) {
	counters, err := db.List(context.Background())
	if err != nil {
		log.Printf("Failed to list counters: %v", err)
		return
	}
	if len(counters) == 0 {
		log.Println("No existing counters found")
		return
	}
	log.Printf("Found %d existing counters:", len(counters))
	for _, c := range counters {
		log.Printf("  - %s: %d", c.ID, c.Value)
	}
}
