package main

import (
	"log"
	"os"

	"github.com/BraidFI-AI/sanctions-engine/internal/api"
	"github.com/BraidFI-AI/sanctions-engine/internal/config"
	"github.com/BraidFI-AI/sanctions-engine/internal/db"
	"github.com/BraidFI-AI/sanctions-engine/internal/index"
	"github.com/BraidFI-AI/sanctions-engine/internal/search"
)

func main() {
	log.Println("Starting Sanctions Screening Engine...")
	log.Println("Loading scoring configuration and bringing up the match index...")

	// ─── Required Environment Variables ─────────────────────────────────
	// All credentials MUST come from environment variables. No fallback
	// defaults for security-sensitive values. Nothing here reads a .env
	// file; set them in the process environment.
	// ────────────────────────────────────────────────────────────────────

	cfgPath := getEnvOrDefault("SCORING_CONFIG", "configs/scoring.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("FATAL: failed to load scoring config %s: %v", cfgPath, err)
	}
	resolver := config.NewResolver(cfg)

	var auditStore *db.AuditStore
	if dbUrl := os.Getenv("DATABASE_URL"); dbUrl != "" {
		conn, err := db.Connect(dbUrl)
		if err != nil {
			log.Printf("Warning: failed to connect to PostgreSQL, continuing without audit persistence. Error: %v", err)
		} else {
			defer conn.Close()
			if err := conn.InitSchema(); err != nil {
				log.Printf("Warning: audit schema init failed: %v", err)
			}
			auditStore = conn
		}
	} else {
		log.Println("DATABASE_URL not set — running without audit persistence")
	}

	idx := index.New()

	traceHub := api.NewTraceHub()
	go traceHub.Run()

	engine := search.New(idx, resolver)

	r := api.SetupRouter(engine, idx, auditStore, traceHub)

	port := getEnvOrDefault("PORT", "5339")

	log.Printf("Engine running on :%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnvOrDefault returns the env var value or a safe default for non-secret settings.
func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
