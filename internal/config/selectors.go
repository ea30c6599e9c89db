package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"amazon-review-sentiment/internal/scraper"
)

// LoadSelectors loads a selector set from a YAML file. Fields left unset in
// the file keep the built-in Amazon defaults.
func LoadSelectors(filePath string) (*scraper.Selectors, error) {
	if filePath == "" {
		return nil, fmt.Errorf("selectors file path is empty")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	selectors := scraper.DefaultSelectors()
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(selectors); err != nil {
		return nil, fmt.Errorf("failed to parse selectors YAML: %w", err)
	}

	if err := validateSelectors(selectors); err != nil {
		return nil, err
	}

	return selectors, nil
}

// LoadRetailerSelectors resolves the selectors for the configured retailer,
// falling back to the built-in defaults when no file is configured.
func (c *Config) LoadRetailerSelectors() (*scraper.Selectors, error) {
	if c.Retailer.SelectorsFile == "" {
		return scraper.DefaultSelectors(), nil
	}
	return LoadSelectors(c.Retailer.SelectorsFile)
}

// validateSelectors checks the minimal selector set
func validateSelectors(s *scraper.Selectors) error {
	if s.ProductTitle == "" {
		return fmt.Errorf("product_title is required")
	}
	if s.ReviewText == "" {
		return fmt.Errorf("review_text is required")
	}
	if len(s.NextPageLink) == 0 {
		return fmt.Errorf("next_page_link is required")
	}
	return nil
}
