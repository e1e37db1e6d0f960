package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CityConfig is one entry of the administratively maintained city registry.
// The banana (slug + state) is the primary key across all city-scoped rows.
type CityConfig struct {
	Banana     string `yaml:"banana"`
	Name       string `yaml:"name"`
	State      string `yaml:"state"`
	Vendor     string `yaml:"vendor"`
	VendorSlug string `yaml:"vendor_slug"`
	Timezone   string `yaml:"timezone"`
	County     string `yaml:"county,omitempty"`
	Status     string `yaml:"status,omitempty"`
	Population *int   `yaml:"population,omitempty"`
}

type citiesYAML struct {
	Cities []CityConfig `yaml:"cities"`
}

// loadCities reads cities.yaml from the config directory. A missing file is
// fine: cities may also exist only in the database.
func loadCities(configDir string) ([]CityConfig, error) {
	path := filepath.Join(configDir, "cities.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc citiesYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := make(map[string]bool, len(doc.Cities))
	for i := range doc.Cities {
		c := &doc.Cities[i]
		if c.Banana == "" {
			return nil, fmt.Errorf("%s: city %d has no banana", path, i)
		}
		if seen[c.Banana] {
			return nil, fmt.Errorf("%s: duplicate banana %q", path, c.Banana)
		}
		seen[c.Banana] = true
		if c.Vendor == "" {
			return nil, fmt.Errorf("%s: city %q has no vendor", path, c.Banana)
		}
		if c.State == "" {
			// Recover the state from the banana tail, e.g. paloaltoCA -> CA.
			if len(c.Banana) > 2 {
				c.State = strings.ToUpper(c.Banana[len(c.Banana)-2:])
			}
		}
		if c.Status == "" {
			c.Status = "active"
		}
		if c.Timezone == "" {
			c.Timezone = "America/Los_Angeles"
		}
	}
	return doc.Cities, nil
}
