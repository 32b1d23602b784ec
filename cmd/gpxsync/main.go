package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"gpxsync/pkg/config"
	"gpxsync/pkg/fulcrum"
	"gpxsync/pkg/updater"

	log "github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	configFile := flag.String("config", "gpxsync.toml", "Optional TOML config file")
	trackDir := flag.String("dir", "", "Directory containing GPX track files")
	tableFile := flag.String("table", "", "CSV table to match and update")
	tokenFile := flag.String("token", "", "File containing the API token")
	apiBase := flag.String("api", "", "Base URL of the record API")
	writeConfig := flag.Bool("write-config", false, "Write the resolved config to the config file and exit")

	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *trackDir != "" {
		cfg.TrackDir = *trackDir
	}
	if *tableFile != "" {
		cfg.TableFile = *tableFile
	}
	if *tokenFile != "" {
		cfg.TokenFile = *tokenFile
	}
	if *apiBase != "" {
		cfg.APIBase = *apiBase
	}

	if *writeConfig {
		if err := cfg.Save(*configFile); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote %s", *configFile)
		return
	}

	// Credentials first: nothing downstream can succeed without them.
	token, err := fulcrum.ReadToken(cfg.TokenFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	client := fulcrum.NewClient(cfg.APIBase, token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := updater.Run(ctx, cfg, client); err != nil {
		log.Fatalf("Sync failed: %v", err)
	}
}
