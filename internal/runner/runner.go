package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"advent-ca/internal/core"
)

// Job names one day to solve and where its input lives.
type Job struct {
	Day    string
	Input  string
	Params map[string]string
}

// Report is the outcome of one job.
type Report struct {
	Day     string
	Name    string
	Result  core.Result
	Elapsed time.Duration
	Err     error
}

// Runner solves days, optionally several at once.
type Runner struct {
	Workers int
	Log     *logrus.Logger
	// Read loads an input file; core.ReadInput when nil.
	Read func(path string) (string, error)
}

// New returns a Runner with workers goroutines. Zero or less means one per
// CPU.
func New(workers int, log *logrus.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{Workers: workers, Log: log, Read: core.ReadInput}
}

// Plan builds jobs for the requested days from a run file. An empty days
// list selects every registered day. input overrides the path when exactly
// one day is requested.
func Plan(rf core.RunFile, days []string, input string) ([]Job, error) {
	if len(days) == 0 {
		days = core.Names()
	}
	if input != "" && len(days) != 1 {
		return nil, fmt.Errorf("-input needs exactly one day, got %d", len(days))
	}
	jobs := make([]Job, 0, len(days))
	for _, d := range days {
		key, factory, err := core.Lookup(d)
		if err != nil {
			return nil, err
		}
		ds := rf.Spec(key)
		if err := core.CheckParams(factory(ds.Params), ds.Params); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if input != "" {
			ds.Input = input
		}
		jobs = append(jobs, Job{Day: key, Input: ds.Input, Params: ds.Params})
	}
	return jobs, nil
}

// Run executes every job and returns reports sorted by day. The error joins
// the failures of individual days; successful days still carry results.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Report, error) {
	reports := make([]Report, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				reports[i] = Report{Day: job.Day, Err: err}
				return err
			}
			reports[i] = r.solve(job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Day < reports[j].Day })
	var errs []error
	for _, rep := range reports {
		if rep.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rep.Day, rep.Err))
		}
	}
	return reports, errors.Join(errs...)
}

func (r *Runner) solve(job Job) Report {
	rep := Report{Day: job.Day}
	_, factory, err := core.Lookup(job.Day)
	if err != nil {
		rep.Err = err
		return rep
	}
	solver := factory(job.Params)
	rep.Name = solver.Name()
	entry := r.Log.WithFields(logrus.Fields{"day": job.Day, "name": rep.Name})

	read := r.Read
	if read == nil {
		read = core.ReadInput
	}
	input, err := read(job.Input)
	if err != nil {
		rep.Err = err
		return rep
	}
	entry.WithField("input", job.Input).Debug("input loaded")

	sw := core.NewStopwatch()
	parts := []struct {
		label string
		fn    func(string) (string, error)
		dst   *string
	}{
		{"one", solver.PartOne, &rep.Result.PartOne},
		{"two", solver.PartTwo, &rep.Result.PartTwo},
	}
	for _, p := range parts {
		sw.Start(p.label)
		answer, err := p.fn(input)
		lap := sw.Stop(p.label)
		if err != nil {
			rep.Err = fmt.Errorf("%s part %s: %w", rep.Name, p.label, err)
			entry.WithField("part", p.label).WithError(err).Error("part failed")
			return rep
		}
		*p.dst = answer
		entry.WithFields(logrus.Fields{"part": p.label, "elapsed": lap}).Info("solved")
	}
	for _, b := range sw.Buckets() {
		rep.Elapsed += sw.Elapsed(b)
	}
	return rep
}

// Print writes the answers of successful reports. With headers each day is
// introduced by "== dayNN (name) ==".
func Print(w io.Writer, reports []Report, headers bool) error {
	first := true
	for _, rep := range reports {
		if rep.Err != nil {
			continue
		}
		if headers {
			if !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "== %s (%s) ==\n", rep.Day, rep.Name); err != nil {
				return err
			}
		}
		first = false
		if err := printAnswer(w, "Part one", rep.Result.PartOne); err != nil {
			return err
		}
		if err := printAnswer(w, "Part two", rep.Result.PartTwo); err != nil {
			return err
		}
	}
	return nil
}

func printAnswer(w io.Writer, label, answer string) error {
	if strings.Contains(answer, "\n") {
		_, err := fmt.Fprintf(w, "%s:\n%s\n", label, answer)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", label, answer)
	return err
}
