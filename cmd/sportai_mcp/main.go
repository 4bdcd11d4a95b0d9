// Package main serves the athlete context MCP tools over stdio, for local
// assistants. The backend serves the same tools at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/sportai/internal/config"
	"github.com/2beens/sportai/internal/db"
	"github.com/2beens/sportai/internal/health"
	sportaimcp "github.com/2beens/sportai/internal/mcp"
	"github.com/2beens/sportai/internal/posture/history"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	dotEnvPath := flag.String("dotenv", ".env", "path for the optional .env file with secrets")
	userID := flag.Int("user", 0, "id of the athlete whose data the tools read")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	if *userID <= 0 {
		log.Fatalln("user id must be set, use -user")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx, *dotEnvPath)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	service := sportaimcp.NewContextService(
		sportaimcp.NewPoolSchemaRepo(dbPool),
		health.NewRepo(dbPool),
		history.NewRepo(dbPool),
		nil,
	)
	server := sportaimcp.NewServer(service, *userID)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Errorf("mcp server: %s", err)
	}
}
