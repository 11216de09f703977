// hooplab-mcp serves the HoopLab MCP tools over stdio. In local mode it
// reads the SQLite store and embedded catalog directly; with -url it
// proxies a running HoopLab server's REST API instead (e.g. over a
// tailnet).
package main

import (
	"flag"
	"log/slog"
	"os"

	hooplab "github.com/claude/hooplab"
	"github.com/claude/hooplab/internal/catalog"
	"github.com/claude/hooplab/internal/config"
	"github.com/claude/hooplab/internal/mcp"
	"github.com/claude/hooplab/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remoteURL := flag.String("url", "", "base URL of a running HoopLab server (remote mode)")
	flag.Parse()

	// Log to stderr — stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	if *remoteURL != "" {
		ds = mcp.NewHTTPClient(*remoteURL)
		log.Info("MCP remote mode", "url", *remoteURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		store, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			log.Error("failed to open storage", "path", cfg.Storage.Path, "error", err)
			os.Exit(1)
		}
		defer store.Close()

		var cat *catalog.Catalog
		if cfg.Catalog.Path != "" {
			cat, err = catalog.LoadFile(cfg.Catalog.Path)
		} else {
			cat, err = catalog.Load(hooplab.CatalogFS, hooplab.DefaultCatalogPath)
		}
		if err != nil {
			log.Error("failed to load workout catalog", "error", err)
			os.Exit(1)
		}

		ds = mcp.NewLocalSource(storage.NewGateway(store, log), cat)
		log.Info("MCP local mode", "storage", cfg.Storage.Path)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
