package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/altverseweb3/analytics-fetcher/pkg/mockdata"
)

func main() {
	days := flag.Int("days", mockdata.DefaultDays, "Days of daily history to generate")
	out := flag.String("out", "mock_analytics.json", "Output file path")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	flag.Parse()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	doc := mockdata.NewGenerator(rng).Generate(*days)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode mock data: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Generated mock analytics data: %s\n", *out)
	fmt.Printf("  - %d days of daily data\n", *days)
	fmt.Printf("  - Total users: %d\n", doc.TotalUsers.TotalUsers)
	fmt.Printf("  - Total transactions: %d\n", doc.TotalActivityStats.TotalTransactions)
}
