package planfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const validDoc = `
locations:
  - Depot
  - Outpost
jobs:
  - resource: Carbon
    drops:
      Depot: 7
      Outpost: 3
  - resource: Carbon
    drops:
      Outpost: 4
`

func TestParse(t *testing.T) {
	t.Parallel()

	locations, jobs, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLocations := []string{"Depot", "Outpost", "Location 3", "Location 4"}
	if !slices.Equal(locations, wantLocations) {
		t.Fatalf("expected %v, got %v", wantLocations, locations)
	}

	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Resource != "Carbon" || jobs[0].Drops["Depot"] != 7 || jobs[0].Drops["Outpost"] != 3 {
		t.Fatalf("unexpected first job: %+v", jobs[0])
	}
	if jobs[1].Total() != 4 {
		t.Fatalf("expected second job total 4, got %d", jobs[1].Total())
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "MissingResource",
			doc:     "locations: [Depot]\njobs:\n  - drops:\n      Depot: 1\n",
			wantErr: ErrMissingResource,
		},
		{
			name:    "NegativeAmount",
			doc:     "locations: [Depot]\njobs:\n  - resource: Carbon\n    drops:\n      Depot: -1\n",
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "UnknownLocation",
			doc:     "locations: [Depot]\njobs:\n  - resource: Carbon\n    drops:\n      Nowhere: 1\n",
			wantErr: ErrUnknownLocation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Parse([]byte(tc.doc)); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	if _, _, err := Parse([]byte("locations: [")); err == nil {
		t.Fatalf("expected parse error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(validDoc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	locations, jobs, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 4 || len(jobs) != 2 {
		t.Fatalf("unexpected document: %v, %v", locations, jobs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
