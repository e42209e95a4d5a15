package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"juicetycoon/internal/database"
	"juicetycoon/internal/game"
	"juicetycoon/internal/models"
	"juicetycoon/internal/monitoring"
	"juicetycoon/internal/server"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Initialize context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load and validate the catalog before anything runs; a malformed
	// catalog is fatal here, never at order-generation time.
	catalog, err := loadCatalog(config)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	difficulty, err := models.ParseDifficulty(config.Difficulty)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize the serve log
	store, err := database.Open(config.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Build the session and wire the observers
	session := game.NewSession(catalog, difficulty, game.SystemClock{}, newRand(config.Seed))
	monitor := monitoring.NewMonitor()
	collector := monitoring.NewMetricsCollector()

	session.Subscribe(store.Sink())
	session.Subscribe(monitor.Sink())
	session.Subscribe(collector.Sink(func() string {
		return string(session.Snapshot().Difficulty)
	}))

	session.Start()
	go game.NewRunner(session).Run(ctx)

	// Start metrics server
	go startMetricsServer(*metricsPort, collector)

	// Start API server
	api := server.NewServer(session, catalog, store, monitor)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: api.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}

		cancel() // Cancel main context
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// Config represents the application configuration
type Config struct {
	Difficulty  string `yaml:"difficulty"`
	Seed        int64  `yaml:"seed"`
	DatabaseDSN string `yaml:"database_dsn"`
	CatalogPath string `yaml:"catalog"`
}

func defaultConfig() *Config {
	return &Config{
		Difficulty:  string(models.DifficultyMedium),
		DatabaseDSN: database.InMemoryDSN,
	}
}

func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Config file %s not found, using defaults", path)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.DatabaseDSN == "" {
		config.DatabaseDSN = database.InMemoryDSN
	}
	return config, nil
}

func loadCatalog(config *Config) (*models.Catalog, error) {
	if config.CatalogPath != "" {
		return models.LoadCatalog(config.CatalogPath)
	}

	catalog := models.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// newRand builds the order-selection random source. A zero seed means
// non-deterministic play; a fixed seed reproduces the order sequence.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func startMetricsServer(port int, collector *monitoring.MetricsCollector) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(collector.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
