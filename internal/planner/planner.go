// Package planner aggregates delivery jobs into a pickup summary and
// per-location drop-off lists.
package planner

import (
	"fmt"
	"sort"

	"github.com/avelez/haulplan/internal/boxes"
)

// Job is one resource's planned delivery across the declared locations.
// Drops maps a location name to a non-negative unit amount; locations a job
// does not touch may simply be absent.
type Job struct {
	Resource string
	Drops    map[string]int
}

// Total is the pickup amount: the sum of the job's drops.
func (j Job) Total() int {
	total := 0
	for _, amount := range j.Drops {
		total += amount
	}
	return total
}

// Entry is one line of a report: a uniquely named job, the units it moves,
// and the box breakdown for those units.
type Entry struct {
	Name  string
	Units int
	Boxes boxes.Breakdown
}

// Plan holds the two read-only result structures of one planning run.
// Dropoffs keeps a key for every declared location, including locations that
// received nothing; ActiveLocations filters those out for display.
type Plan struct {
	Locations []string
	Pickups   []Entry
	Dropoffs  map[string][]Entry
}

// Build numbers the jobs, computes totals and box breakdowns, and groups
// drop-off entries by location. Pickups and each drop-off list come back
// sorted alphabetically by the jobs' unique display names.
//
// Jobs sharing a resource name are disambiguated with a per-resource
// sequence number in input order: two "Carbon" jobs become "Carbon 1" and
// "Carbon 2" no matter what sits between them.
func Build(jobs []Job, locations []string) Plan {
	plan := Plan{
		Locations: append([]string(nil), locations...),
		Pickups:   make([]Entry, 0, len(jobs)),
		Dropoffs:  make(map[string][]Entry, len(locations)),
	}
	for _, location := range locations {
		plan.Dropoffs[location] = []Entry{}
	}

	seen := make(map[string]int, len(jobs))
	for _, job := range jobs {
		seen[job.Resource]++
		name := fmt.Sprintf("%s %d", job.Resource, seen[job.Resource])

		total := job.Total()
		plan.Pickups = append(plan.Pickups, Entry{
			Name:  name,
			Units: total,
			Boxes: boxes.Decompose(total),
		})

		for _, location := range locations {
			amount := job.Drops[location]
			if amount <= 0 {
				continue
			}
			plan.Dropoffs[location] = append(plan.Dropoffs[location], Entry{
				Name:  name,
				Units: amount,
				Boxes: boxes.Decompose(amount),
			})
		}
	}

	sortEntries(plan.Pickups)
	for _, entries := range plan.Dropoffs {
		sortEntries(entries)
	}

	return plan
}

// ActiveLocations returns the declared locations, in declaration order,
// that received at least one drop-off entry.
func (p Plan) ActiveLocations() []string {
	active := make([]string, 0, len(p.Locations))
	for _, location := range p.Locations {
		if len(p.Dropoffs[location]) > 0 {
			active = append(active, location)
		}
	}
	return active
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
