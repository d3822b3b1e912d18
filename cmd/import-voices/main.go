// Command import-voices loads a name:voice_id list into the voice catalog.
// Lines without a colon, with an empty part, or whose voice id already
// exists are skipped. The whole file is imported in one transaction.
// When CACHE_REDIS_URL is set the shared voice list is refreshed afterwards.
//
// Flags:
//
//	--file     path to the .txt file (required)
//	--dry-run  parse the file and report counts without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres/voice"
	"github.com/heartmarshall/amulet-backend/internal/app"
	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/internal/service/catalog"
)

func main() {
	fileFlag := flag.String("file", "", "path to a name:voice_id .txt file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the file without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: import-voices --file=voices.txt [--dry-run]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	f, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	if *dryRunFlag {
		entries, skipped, err := catalog.ParseVoiceList(f)
		if err != nil {
			logger.Error("parse file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dry run completed",
			slog.Int("parsed", len(entries)),
			slog.Int("skipped", skipped),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, closeCache, err := openCache(ctx, cfg.Cache)
	if err != nil {
		logger.Error("connect to cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeCache() //nolint:errcheck

	svc := catalog.NewService(logger, voice.New(pool), store, cfg.Cache.TTL, postgres.NewTxManager(pool))

	result, err := svc.Import(ctx, f)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.String("file", *fileFlag),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)
}
