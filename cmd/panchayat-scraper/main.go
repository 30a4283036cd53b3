package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"panchayat-scraper/pkg/config"
	"panchayat-scraper/pkg/crawler"
	"panchayat-scraper/pkg/fetch"
	"panchayat-scraper/pkg/storage"
)

const version = "0.4.1"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "crawl":
		runCrawl(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "list-states":
		runListStates(os.Args[2:])
	case "version":
		fmt.Printf("panchayat-scraper %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`panchayat-scraper - Administrative directory crawler with Devanagari transliteration

Usage:
  panchayat-scraper <command> [options]

Commands:
  crawl        Walk the configured state list and export panchayat data to CSV
  validate     Validate configuration file
  list-states  List configured state URLs and their parsed identifiers
  version      Show version info

Run 'panchayat-scraper <command> -h' for command-specific help.`)
}

// loadConfig loads and parses the config file
func loadConfig(path string) (*config.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg config.AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// setupLogger builds the shared logrus logger.
func setupLogger(logLevelStr string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel)

	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
	} else {
		log.SetLevel(level)
	}
	return log
}

// runCrawl handles the crawl subcommand
func runCrawl(args []string) {
	fs := flag.NewFlagSet("crawl", flag.ExitOnError)
	configFile := fs.String("config", "config.yaml", "Path to config file")
	outputPath := fs.String("output", "", "Override output CSV path from config")
	logLevel := fs.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panchayat-scraper crawl [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	log := setupLogger(*logLevel)
	entry := logrus.NewEntry(log)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config '%s': %v", *configFile, err)
	}
	warnings, err := cfg.Validate()
	for _, w := range warnings {
		log.Warn(w)
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}

	log.Infof("Base URL: %s | States: %d | Delay: %v | Output: %s",
		cfg.BaseURL, len(cfg.StateURLs), cfg.RequestDelay, cfg.OutputPath)

	// --- Shared components ---
	httpClient := fetch.NewClient(cfg.HTTPClientSettings, entry)
	rateLimiter := fetch.NewRateLimiter(cfg.RequestDelay, entry)

	var pageCache storage.PageCache
	if cfg.Cache.Enabled {
		badgerCache, cacheErr := storage.NewBadgerCache(cfg.Cache.Dir, cfg.Cache.TTL, entry)
		if cacheErr != nil {
			log.Fatalf("Failed to initialize page cache: %v", cacheErr)
		}
		defer func() {
			if closeErr := badgerCache.Close(); closeErr != nil {
				log.Errorf("Error closing page cache: %v", closeErr)
			}
		}()
		pageCache = badgerCache
	}

	var robots *fetch.RobotsHandler
	if cfg.RespectRobots {
		log.Info("robots.txt checks enabled")
		robots = fetch.NewRobotsHandler(httpClient, rateLimiter, entry)
	}

	fetcher := fetch.NewFetcher(httpClient, rateLimiter, pageCache, robots, entry)
	c, err := crawler.New(cfg, fetcher, entry)
	if err != nil {
		log.Fatalf("Failed to create crawler: %v", err)
	}

	// --- Signal handling: SIGINT/SIGTERM cancels the crawl ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Warnf("Received signal %v, cancelling crawl (collected records will be discarded)", sig)
		cancel()
	}()

	records, _, err := c.Run(ctx)
	if err != nil {
		log.Warnf("Crawl aborted: %v", err)
		os.Exit(1)
	}

	if err := crawler.WriteCSV(cfg.OutputPath, records, entry); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// runValidate handles the validate subcommand
func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configFile := fs.String("config", "config.yaml", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panchayat-scraper validate [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	os.Exit(doValidate(*configFile, os.Stdout, os.Stderr))
}

// doValidate performs validation and writes output to provided writers.
// Returns exit code (0 = success, 1 = error).
func doValidate(configPath string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		fmt.Fprintf(stdout, "WARN: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Configuration valid.")
	return 0
}

// runListStates handles the list-states subcommand
func runListStates(args []string) {
	fs := flag.NewFlagSet("list-states", flag.ExitOnError)
	configFile := fs.String("config", "config.yaml", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panchayat-scraper list-states [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.StateURLs) == 0 {
		fmt.Println("No state URLs configured.")
		return
	}
	for _, stateURL := range cfg.StateURLs {
		cctx := crawler.ContextFromURL(stateURL)
		fmt.Printf("%-24s code=%-8s fy=%-10s %s\n", cctx.State, cctx.StateCode, cctx.FinYear, stateURL)
	}
}
