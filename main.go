// ABOUTME: Entry point for the CRM demo API server
// ABOUTME: Loads config, builds the in-memory store, and serves the REST API
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/udaraw/crm-api/config"
	"github.com/udaraw/crm-api/handlers"
	"github.com/udaraw/crm-api/store"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	port := flag.String("port", "", "Listen port (overrides PORT env)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", handlers.APIName, handlers.Version)
		os.Exit(0)
	}

	cfg := config.Load()
	if *port != "" {
		cfg.ServerPort = *port
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The store seeds itself on the first request; constructing it
	// empty keeps startup instant and tests isolated.
	st := store.New()
	router := handlers.NewRouter(st)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	addr := ":" + cfg.ServerPort
	log.Printf("Starting CRM API at http://localhost%s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
