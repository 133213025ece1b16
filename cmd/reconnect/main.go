// reconnect - an assistant for rekindling dormant professional connections.
// Copyright (C) 2025 The reconnect authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/reconnecthq/reconnect/pkg/assistant"
	"github.com/reconnecthq/reconnect/pkg/config"
	"github.com/reconnecthq/reconnect/pkg/httpapi"
	"github.com/reconnecthq/reconnect/pkg/scrapin"
)

// Filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fallbackLog := zerolog.New(os.Stderr)
		fallbackLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := buildLogger(cfg.Logging)
	log.Info().
		Str("tag", Tag).
		Str("commit", Commit).
		Str("build_time", BuildTime).
		Msg("reconnect starting")

	scraper, err := scrapin.NewClient(scrapin.Config{
		BaseURL:      cfg.ScrapeAPI.BaseURL,
		CookieHeader: cfg.ScrapeAPI.CookieHeader,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scraping client")
	}

	var completer assistant.Completer
	if cfg.Assistant.BaseURL != "" {
		completer = assistant.NewClient(assistant.Config{
			BaseURL: cfg.Assistant.BaseURL,
			APIKey:  cfg.Assistant.APIKey,
			Model:   cfg.Assistant.Model,
		})
	} else {
		log.Warn().Msg("assistant is not configured, recommendation endpoints disabled")
	}

	api := httpapi.NewServer(log, scraper, completer, httpapi.TokenAuthenticator{Token: cfg.Auth.Token}, cfg.CSVHeader)
	server := &http.Server{
		Addr:    cfg.Listen,
		Handler: api.Handler(),
	}

	go func() {
		log.Info().Str("listen", cfg.Listen).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func buildLogger(cfg config.Logging) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Console {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
