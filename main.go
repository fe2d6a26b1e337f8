package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"geowatch/internal/cache"
	"geowatch/internal/config"
	"geowatch/internal/data"
	"geowatch/internal/debug"
	"geowatch/internal/geo"
	"geowatch/internal/track"
	"geowatch/internal/ui"
)

func main() {
	// Parse command line flags
	help := flag.Bool("h", false, "Show help message")
	configPath := flag.String("config", "", "Config file (default: geowatch.yaml in the working directory)")
	dataDir := flag.String("data", "", "Data directory for map datasets (default: ~/.geowatch/data)")
	offline := flag.Bool("offline", false, "Never download datasets, use cached files only")
	debugLog := flag.String("d", "", "Debug log file (e.g., debug.log)")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("geowatch - Terminal world-map situation dashboard")
		fmt.Println("\nUsage: geowatch [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		fmt.Println("\nKeys: mouse drag pans, wheel zooms at the cursor, +/- zoom, 0 reset,")
		fmt.Println("      arrows browse intel, Enter opens detail, Tab cycles assets,")
		fmt.Println("      s saves a PNG snapshot, q quits")
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file for the data location
	if *dataDir == "" {
		*dataDir = cfg.Data.Dir
	}
	if cfg.Data.Offline {
		*offline = true
	}

	// Set up debug logging if requested
	if *debugLog != "" {
		logFile, err := os.Create(*debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create debug log: %v\n", err)
		} else {
			defer logFile.Close()
			debug.SetOutput(logFile)
			debug.Log("geowatch debug log started")
			fmt.Printf("Debug logging enabled: %s\n", *debugLog)
		}
	}

	// Initialize cache manager
	fmt.Println("Initializing map data cache...")
	cacheManager, err := cache.NewManager(*dataDir, *offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize cache: %v\n", err)
		os.Exit(1)
	}

	// Ensure boundary and coastline datasets are available
	fmt.Println("Checking map datasets...")
	if err := cacheManager.EnsureData(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to prepare map data: %v\n", err)
		os.Exit(1)
	}

	content := loadContent(cacheManager)

	// Initialize asset tracker and position sources
	tracker := track.NewTracker(5 * time.Minute)

	var sources []track.PositionSource
	if cfg.Demo.Assets {
		sources = append(sources, track.NewReplaySource(time.Now(), data.DemoRoutes()))
	}

	// Create and run application
	fmt.Println("Starting geowatch...")
	app, err := ui.NewApp(cfg, tracker, sources, content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}

// loadContent assembles the static display datasets: downloaded boundaries
// and coastlines, optional local feeds, and the curated overlay tables.
// Optional datasets fail soft with a warning.
func loadContent(cacheManager *cache.Manager) ui.Content {
	fmt.Println("Loading geographic features...")

	countries, err := data.LoadCountries(cacheManager.CountriesPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load country boundaries: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d boundary features\n", len(countries))

	var coastlines []*geo.Polyline
	if lines, err := data.LoadCoastlines(cacheManager.CoastlinePath()); err != nil {
		fmt.Printf("Warning: no coastlines: %v\n", err)
	} else {
		coastlines = lines
	}

	lanes := data.ShippingLanes()
	if _, err := os.Stat(cacheManager.FrontlinePath()); err == nil {
		front, err := data.LoadFrontlines(cacheManager.FrontlinePath())
		if err != nil {
			fmt.Printf("Warning: skipping frontlines: %v\n", err)
		} else {
			lanes = append(lanes, front...)
		}
	}

	markers := data.Chokepoints()
	markers = append(markers, data.Installations()...)
	markers = append(markers, data.NuclearFacilities()...)
	markers = append(markers, data.Cities()...)

	var incidents []*data.Incident
	if _, err := os.Stat(cacheManager.IncidentsPath()); err == nil {
		loaded, err := data.LoadIncidents(cacheManager.IncidentsPath())
		if err != nil {
			fmt.Printf("Warning: skipping intel feed: %v\n", err)
		} else {
			incidents = loaded
			for _, inc := range incidents {
				markers = append(markers, inc.Marker())
			}
			fmt.Printf("Loaded %d intel incidents\n", len(incidents))
		}
	}

	if debug.Enabled() && len(incidents) > 0 {
		for name, score := range data.RiskByCountry(incidents, countries) {
			debug.Event().Str("country", name).Int("score", score).Msg("incident risk")
		}
	}

	return ui.Content{
		Countries:  countries,
		Coastlines: coastlines,
		Lanes:      lanes,
		Markers:    markers,
		Incidents:  incidents,
	}
}
