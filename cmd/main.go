package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/router"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Converts foreign currency amounts into roubles
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath, port := parseFlags()

	appHost, appPort, logLevel, swaggerEnabled,
		ratesRetries, ratesRetryDelay, ratesTimeout,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if port != "" {
		appPort = port
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, swaggerEnabled,
		ratesRetries, ratesRetryDelay, ratesTimeout,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and the listening port. The port is empty unless -p/--port was given.
func parseFlags() (configPath, port string) {
	c := flag.String("c", "config.env", "Path to configuration file")

	var p int
	flag.IntVar(&p, "p", 8080, "Server port")
	flag.IntVar(&p, "port", 8080, "Server port")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "p" || f.Name == "port" {
			port = strconv.Itoa(p)
		}
	})

	return *c, port
}

// parseConfig loads environment variables from a file and returns
// the application, logging and rates feed configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string, swaggerEnabled bool,
	ratesRetries int, ratesRetryDelay, ratesTimeout time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	if swaggerEnabled, err = strconv.ParseBool(getEnv("APP_SWAGGER_ENABLED", "false")); err != nil {
		return
	}

	// Rates feed config
	if ratesRetries, err = strconv.Atoi(getEnv("RATES_RETRIES", strconv.Itoa(facades.DefaultRetries))); err != nil {
		return
	}
	var delayMs, timeoutSecond int
	if delayMs, err = strconv.Atoi(getEnv("RATES_RETRY_DELAY_MS", "1000")); err != nil {
		return
	}
	ratesRetryDelay = time.Duration(delayMs) * time.Millisecond
	if timeoutSecond, err = strconv.Atoi(getEnv("RATES_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	ratesTimeout = time.Duration(timeoutSecond) * time.Second

	return
}

// run initializes the logger, the rates feed client and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string, swaggerEnabled bool,
	ratesRetries int, ratesRetryDelay, ratesTimeout time.Duration,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Initialize rates feed client
	ratesFacade := facades.NewDailyRatesHTTPFacade(
		&http.Client{Timeout: ratesTimeout},
		facades.DailyRatesURL,
		log,
		facades.WithRetries(ratesRetries),
		facades.WithRetryDelay(ratesRetryDelay),
	)

	// Initialize services
	convertService := services.NewConvertService(ratesFacade, log)

	// Initialize handlers
	convertHandler := handlers.NewConvertHandler(convertService, log)

	// Setup router
	var opts []router.Option
	if swaggerEnabled {
		opts = append(opts, router.WithSwagger(
			fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort),
		))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: router.New(log, convertHandler, opts...),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
