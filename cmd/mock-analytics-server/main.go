package main

import (
	"flag"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/altverseweb3/analytics-fetcher/pkg/mockapi"
	"github.com/altverseweb3/analytics-fetcher/pkg/mockdata"
	"github.com/sirupsen/logrus"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	apiKey := flag.String("api-key", "dev-key", "API key the server accepts")
	days := flag.Int("days", mockdata.DefaultDays, "Days of daily history to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := setupLogger(*logLevel)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	doc := mockdata.NewGenerator(rng).Generate(*days)

	server := &http.Server{
		Addr:         *addr,
		Handler:      mockapi.NewServer(*apiKey, doc, logger).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Infof("Mock analytics endpoint listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("Server failed: %v", err)
		os.Exit(1)
	}
}

func setupLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
