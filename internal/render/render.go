// Package render writes the pickup summary and drop-off list reports as
// plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/avelez/haulplan/internal/boxes"
	"github.com/avelez/haulplan/internal/planner"
)

const (
	pickupHeader  = "Resource Pickup Summary"
	dropoffHeader = "Location Dropoff List"
)

// Plan writes both report sections to w. Pickup entries and each location's
// drop-off entries arrive pre-sorted from the planner; locations without
// drop-offs are left out entirely.
func Plan(w io.Writer, p planner.Plan) error {
	if err := writeHeader(w, pickupHeader); err != nil {
		return err
	}
	if len(p.Pickups) == 0 {
		if _, err := fmt.Fprintln(w, "  (no jobs entered)"); err != nil {
			return err
		}
	}
	for _, entry := range p.Pickups {
		if err := writeEntry(w, "  ", entry); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeHeader(w, dropoffHeader); err != nil {
		return err
	}
	for _, location := range p.ActiveLocations() {
		if _, err := fmt.Fprintf(w, "  %s:\n", location); err != nil {
			return err
		}
		for _, entry := range p.Dropoffs[location] {
			if err := writeEntry(w, "    ", entry); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeHeader(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len(title)))
	return err
}

func writeEntry(w io.Writer, indent string, entry planner.Entry) error {
	_, err := fmt.Fprintf(w, "%s%s: %d units (%s)\n",
		indent, entry.Name, entry.Units, formatBoxes(entry.Boxes))
	return err
}

func formatBoxes(b boxes.Breakdown) string {
	return fmt.Sprintf("%d x 4-box, %d x 2-box, %d x 1-box", b.Box4, b.Box2, b.Box1)
}
