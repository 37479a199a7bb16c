// Package session collects a planning session interactively: location names
// first, then jobs until the user enters the "done" sentinel. Prompts go to
// an io.Writer and answers come from an io.Reader so the flow is testable
// without a terminal.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/avelez/haulplan/internal/planner"
)

// doneSentinel ends job entry, compared case-insensitively.
const doneSentinel = "done"

// ErrInputClosed is returned when the input stream ends while a prompt is
// still waiting for an answer. There is no recovery from a closed stdin.
var ErrInputClosed = errors.New("input stream closed before the session finished")

// Collector runs the prompt sequence for one planning session.
type Collector struct {
	scanner *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

// New creates a Collector reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Collector {
	return &Collector{
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// CollectLocations prompts for the four roster slots. A blank answer keeps
// the default name for that slot; a name that repeats an earlier slot is
// rejected and the slot re-prompted.
func (c *Collector) CollectLocations(defaults []string) ([]string, error) {
	names := make([]string, 0, planner.MaxLocations)
	taken := make(map[string]struct{}, planner.MaxLocations)

	for i := 0; i < planner.MaxLocations; i++ {
		fallback := planner.DefaultLocationName(i + 1)
		if i < len(defaults) && strings.TrimSpace(defaults[i]) != "" {
			fallback = strings.TrimSpace(defaults[i])
		}

		for {
			fmt.Fprintf(c.out, "Location %d name [%s]: ", i+1, fallback)
			line, err := c.readLine()
			if err != nil {
				return nil, err
			}

			name := strings.TrimSpace(line)
			if name == "" {
				name = fallback
			}
			if _, dup := taken[name]; dup {
				fmt.Fprintf(c.out, "%q is already in use, pick another name.\n", name)
				continue
			}

			taken[name] = struct{}{}
			names = append(names, name)
			break
		}
	}

	return names, nil
}

// CollectJobs prompts for jobs until the user enters the sentinel. Each job
// asks for one amount per location; a job whose amounts sum to zero is
// discarded with a warning rather than recorded.
func (c *Collector) CollectJobs(locations []string) ([]planner.Job, error) {
	var jobs []planner.Job

	for {
		fmt.Fprintf(c.out, "Resource name (or %q to finish): ", doneSentinel)
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}

		resource := strings.TrimSpace(line)
		if resource == "" {
			continue
		}
		if strings.EqualFold(resource, doneSentinel) {
			return jobs, nil
		}

		drops := make(map[string]int, len(locations))
		total := 0
		for _, location := range locations {
			amount, err := c.collectAmount(resource, location)
			if err != nil {
				return nil, err
			}
			drops[location] = amount
			total += amount
		}

		if total == 0 {
			fmt.Fprintf(c.out, "Skipping %s: no units to deliver anywhere.\n", resource)
			c.logger.Warn("discarding zero-total job", zap.String("resource", resource))
			continue
		}

		jobs = append(jobs, planner.Job{Resource: resource, Drops: drops})
		c.logger.Debug("job recorded",
			zap.String("resource", resource),
			zap.Int("total", total),
		)
	}
}

// collectAmount re-prompts until it reads a non-negative integer. A blank
// answer counts as zero. There is no retry limit.
func (c *Collector) collectAmount(resource, location string) (int, error) {
	for {
		fmt.Fprintf(c.out, "  %s for %s [0]: ", resource, location)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return 0, nil
		}

		amount, err := strconv.Atoi(answer)
		if err != nil || amount < 0 {
			fmt.Fprintln(c.out, "  Enter a whole number of units, zero or more.")
			continue
		}

		return amount, nil
	}
}

func (c *Collector) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return c.scanner.Text(), nil
}
