// Package cache downloads and stores the boundary and coastline datasets
// the dashboard draws, so startup works from a warm directory without
// network access.
package cache

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Manager handles downloading and caching map datasets
type Manager struct {
	cacheDir string
	offline  bool
}

// DataFile represents a dataset to download
type DataFile struct {
	Name     string // Friendly name
	URL      string // Download URL
	File     string // Target filename in the cache dir
	Zipped   bool   // If true, the download is a zip to extract
	Optional bool   // If true, failure to download won't stop the app
}

// Map datasets: world boundaries as GeoJSON, coastlines at 1:110m
var MapDataFiles = []DataFile{
	{
		Name: "World Countries",
		URL:  "https://datahub.io/core/geo-countries/r/countries.geojson",
		File: "countries.geojson",
	},
	{
		Name:     "Coastlines",
		URL:      "https://naciscdn.org/naturalearth/110m/physical/ne_110m_coastline.zip",
		File:     "ne_110m_coastline.shp",
		Zipped:   true,
		Optional: true,
	},
}

// NewManager creates a new cache manager.
// If cacheDir is empty, uses ~/.geowatch/data. In offline mode missing
// files are reported instead of downloaded.
func NewManager(cacheDir string, offline bool) (*Manager, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".geowatch", "data")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Manager{cacheDir: cacheDir, offline: offline}, nil
}

// EnsureData ensures all map datasets are available, downloading missing
// ones. Optional files that fail to download are skipped with a warning.
func (m *Manager) EnsureData() error {
	for _, file := range MapDataFiles {
		if err := m.ensureFile(file); err != nil {
			if file.Optional {
				fmt.Printf("Warning: Skipping %s (optional): %v\n", file.Name, err)
				continue
			}
			return fmt.Errorf("failed to ensure %s: %w", file.Name, err)
		}
	}
	return nil
}

// ensureFile checks if a data file exists, downloads if needed
func (m *Manager) ensureFile(file DataFile) error {
	target := filepath.Join(m.cacheDir, file.File)
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	if m.offline {
		return fmt.Errorf("missing %s and offline mode is set", file.File)
	}

	fmt.Printf("Downloading %s...\n", file.Name)

	client := &http.Client{}
	req, err := http.NewRequest("GET", file.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; geowatch/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %s (URL: %s)", resp.Status, file.URL)
	}

	if !file.Zipped {
		out, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer out.Close()

		if _, err := io.Copy(out, resp.Body); err != nil {
			return fmt.Errorf("failed to save download: %w", err)
		}

		fmt.Printf("Downloaded %s\n", file.Name)
		return nil
	}

	tmpFile, err := os.CreateTemp("", "geowatch_*.zip")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("failed to save download: %w", err)
	}

	tmpFile.Close()

	if err := m.extractZip(tmpFile.Name(), m.cacheDir); err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}

	fmt.Printf("Downloaded and extracted %s\n", file.Name)
	return nil
}

func (m *Manager) extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(filepath.Base(f.Name), ".") {
			continue
		}

		destPath := filepath.Join(destDir, filepath.Base(f.Name))
		rc, err := f.Open()
		if err != nil {
			return err
		}

		outFile, err := os.Create(destPath)
		if err != nil {
			rc.Close()
			return err
		}

		_, err = io.Copy(outFile, rc)
		outFile.Close()
		rc.Close()

		if err != nil {
			return err
		}
	}

	return nil
}

// CountriesPath returns the path to the world boundaries GeoJSON
func (m *Manager) CountriesPath() string {
	return filepath.Join(m.cacheDir, "countries.geojson")
}

// CoastlinePath returns the path to the coastline shapefile
func (m *Manager) CoastlinePath() string {
	return filepath.Join(m.cacheDir, "ne_110m_coastline.shp")
}

// IncidentsPath returns the path to the intel feed snapshot, if present
func (m *Manager) IncidentsPath() string {
	return filepath.Join(m.cacheDir, "incidents.json")
}

// FrontlinePath returns the path to the frontline GeoJSON, if present
func (m *Manager) FrontlinePath() string {
	return filepath.Join(m.cacheDir, "frontline.geojson")
}

// GetCacheDir returns the cache directory
func (m *Manager) GetCacheDir() string {
	return m.cacheDir
}
