package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/avelez/haulplan/internal/config"
	"github.com/avelez/haulplan/internal/planfile"
	"github.com/avelez/haulplan/internal/planner"
	"github.com/avelez/haulplan/internal/render"
	"github.com/avelez/haulplan/internal/session"
)

// App encapsulates the application dependencies for one planning run.
type App struct {
	cfg    config.Config
	logger *zap.Logger
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Run executes one planning session and writes the reports to out. With a
// plan file configured the session is loaded from it; otherwise locations
// and jobs are collected interactively from in.
func (a *App) Run(in io.Reader, out io.Writer) error {
	var (
		locations []string
		jobs      []planner.Job
		err       error
	)

	if a.cfg.PlanFile != "" {
		locations, jobs, err = a.loadPlanFile()
	} else {
		locations, jobs, err = a.collect(in, out)
	}
	if err != nil {
		return err
	}

	plan := planner.Build(jobs, locations)
	if err := render.Plan(out, plan); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	a.logger.Info("plan rendered",
		zap.Int("jobs", len(plan.Pickups)),
		zap.Int("active_locations", len(plan.ActiveLocations())),
	)
	return nil
}

func (a *App) loadPlanFile() ([]string, []planner.Job, error) {
	locations, jobs, err := planfile.Load(a.cfg.PlanFile)
	if err != nil {
		return nil, nil, err
	}

	// Same rule as the interactive flow: a job that delivers nothing
	// anywhere is dropped, not planned.
	kept := jobs[:0]
	for _, job := range jobs {
		if job.Total() == 0 {
			a.logger.Warn("discarding zero-total job",
				zap.String("resource", job.Resource),
				zap.String("plan_file", a.cfg.PlanFile),
			)
			continue
		}
		kept = append(kept, job)
	}

	a.logger.Debug("plan file loaded",
		zap.String("path", a.cfg.PlanFile),
		zap.Int("jobs", len(kept)),
	)
	return locations, kept, nil
}

func (a *App) collect(in io.Reader, out io.Writer) ([]string, []planner.Job, error) {
	collector := session.New(in, out, a.logger)

	locations, err := collector.CollectLocations(a.cfg.Locations)
	if err != nil {
		return nil, nil, err
	}

	jobs, err := collector.CollectJobs(locations)
	if err != nil {
		return nil, nil, err
	}

	return locations, jobs, nil
}
