// Package planfile loads planning sessions from YAML documents, the
// non-interactive alternative to prompting. A document declares the location
// roster and the jobs against it:
//
//	locations:
//	  - Depot
//	  - Outpost
//	jobs:
//	  - resource: Carbon
//	    drops:
//	      Depot: 7
package planfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avelez/haulplan/internal/planner"
)

var (
	// ErrMissingResource is returned when a job entry has no resource name.
	ErrMissingResource = errors.New("job entry is missing a resource name")
	// ErrNegativeAmount is returned when a drop amount is below zero.
	ErrNegativeAmount = errors.New("drop amounts must be non-negative")
	// ErrUnknownLocation is returned when a drop targets an undeclared location.
	ErrUnknownLocation = errors.New("drop targets a location not in the roster")
)

// Document is the YAML shape of a plan file.
type Document struct {
	Locations []string   `yaml:"locations"`
	Jobs      []JobEntry `yaml:"jobs"`
}

// JobEntry is one job in a plan file.
type JobEntry struct {
	Resource string         `yaml:"resource"`
	Drops    map[string]int `yaml:"drops"`
}

// Load reads and parses the plan file at path.
func Load(path string) ([]string, []planner.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

// Parse validates a plan document and returns the normalized roster and the
// jobs in declaration order. Zero-total jobs are kept; the caller decides
// whether to warn and drop them, matching the interactive flow.
func Parse(data []byte) ([]string, []planner.Job, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse plan file: %w", err)
	}

	locations, err := planner.NormalizeLocations(doc.Locations)
	if err != nil {
		return nil, nil, err
	}

	roster := make(map[string]struct{}, len(locations))
	for _, location := range locations {
		roster[location] = struct{}{}
	}

	jobs := make([]planner.Job, 0, len(doc.Jobs))
	for i, entry := range doc.Jobs {
		resource := strings.TrimSpace(entry.Resource)
		if resource == "" {
			return nil, nil, fmt.Errorf("job %d: %w", i+1, ErrMissingResource)
		}

		drops := make(map[string]int, len(entry.Drops))
		for location, amount := range entry.Drops {
			if amount < 0 {
				return nil, nil, fmt.Errorf("job %d (%s): %w: %s is %d",
					i+1, resource, ErrNegativeAmount, location, amount)
			}
			if _, ok := roster[location]; !ok {
				return nil, nil, fmt.Errorf("job %d (%s): %w: %q",
					i+1, resource, ErrUnknownLocation, location)
			}
			drops[location] = amount
		}

		jobs = append(jobs, planner.Job{Resource: resource, Drops: drops})
	}

	return locations, jobs, nil
}
