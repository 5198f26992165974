// Command lookup resolves a single facility request against the open-data
// API and prints the response as JSON.
//
// Usage:
//
//	go run ./cmd/lookup -type hospital -location 02114
//	go run ./cmd/lookup -type xubh-q36u -id 220071
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/facility-resolver/internal/adapter/socrata"
	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
	"github.com/couchcryptid/facility-resolver/internal/resolver"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	facilityType := fs.String("type", "", "facility type: data-source key or slug (hospital, nursing_home, home_health)")
	location := fs.String("location", "", "city name or postal code to search")
	id := fs.String("id", "", "facility identifier to resolve to an address")
	baseURL := fs.String("base-url", domain.DefaultBaseURL, "endpoint pattern with {} for the data-source key")
	timeout := fs.Duration("timeout", 10*time.Second, "upstream request timeout")
	verbose := fs.Bool("v", false, "log upstream requests to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *facilityType == "" || (*location == "" && *id == "") {
		fs.Usage()
		return fmt.Errorf("missing required flags: -type and one of -location, -id")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	metrics := observability.NewMetricsWith(prometheus.NewRegistry())

	client := socrata.NewClient(*baseURL, *timeout, metrics, logger)
	svc := resolver.New(client, logger, metrics)

	req := domain.LookupRequest{FacilityType: *facilityType, Location: *location, FacilityID: *id}
	if *id != "" {
		req.Kind = domain.KindAddress
	}

	resp, lookupErr := svc.Handle(context.Background(), req)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return lookupErr
}
