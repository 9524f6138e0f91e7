package main

import (
	"flag"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/matchpulse/src/config"
	"github.com/username/matchpulse/src/database"
	"github.com/username/matchpulse/src/handlers"
	"github.com/username/matchpulse/src/logger"
	"github.com/username/matchpulse/src/parsers/results"
	"github.com/username/matchpulse/src/processors"
	"github.com/username/matchpulse/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Everything served here is public read-only data.
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, If-None-Match")
		w.Header().Set("Access-Control-Expose-Headers", "ETag")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	serve := flag.Bool("serve", false, "keep running and serve the generated page plus a JSON API")
	flag.Parse()

	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("MatchPulse blog generator starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)

	reportCache := cache.New(config.Cfg.CacheTTL, 2*config.Cfg.CacheTTL)

	matchParser := results.NewParser()
	summaryProcessor := processors.NewSummaryProcessor()
	fetchService := services.NewFetchService(config.Cfg.FetchTimeout)
	reportService := services.NewReportService(
		matchParser, summaryProcessor, fetchService, reportCache,
		config.Cfg.SourceURL, config.Cfg.TemplatePath, config.Cfg.OutputPath,
	)

	result, err := reportService.GenerateReport()
	if err != nil {
		logger.L.Error("Report generation failed", "error", err)
		if !*serve {
			os.Exit(1)
		}
		// In serve mode a previously generated page keeps serving.
	} else {
		logger.L.Info("Report run complete",
			"matches", result.MatchCount,
			"teams", result.TeamCount,
			"output", result.OutputPath)
	}

	if !*serve {
		return
	}

	reportHandler := handlers.NewReportHandler(reportService, config.Cfg.OutputPath)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /{$}", reportHandler.HandleGetReport)
	rootMux.HandleFunc("GET /api/summaries", reportHandler.HandleGetSummaries)
	rootMux.HandleFunc("GET /api/runs", reportHandler.HandleGetRuns)
	rootMux.HandleFunc("POST /api/refresh", reportHandler.HandleRefresh)

	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
