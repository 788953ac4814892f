// Package sweep solves one day repeatedly while varying a single integer
// tunable.
package sweep

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"text/tabwriter"
	"time"

	"advent-ca/internal/core"
)

// Scenario is one value of the swept tunable with the full parameter map
// handed to the solver factory.
type Scenario struct {
	Value  int
	Params map[string]string
}

// Result is the outcome of one scenario.
type Result struct {
	Value   int
	Result  core.Result
	Elapsed time.Duration
	Err     error
}

// Values lists from..to inclusive in increments of step.
func Values(from, to, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if to < from {
		return nil, fmt.Errorf("empty range %d..%d", from, to)
	}
	var vs []int
	for v := from; v <= to; v += step {
		vs = append(vs, v)
	}
	return vs, nil
}

// Scenarios copies base once per value and sets key in each copy.
func Scenarios(base map[string]string, key string, values []int) []Scenario {
	out := make([]Scenario, 0, len(values))
	for _, v := range values {
		params := make(map[string]string, len(base)+1)
		for k, pv := range base {
			params[k] = pv
		}
		params[key] = strconv.Itoa(v)
		out = append(out, Scenario{Value: v, Params: params})
	}
	return out
}

// Run solves input once per scenario on workers goroutines and returns the
// results ordered by value. A scenario whose value the solver rejected
// reports an error instead of silently solving with the default.
func Run(factory core.Factory, key, input string, scenarios []Scenario, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(factory, key, input, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Value < all[j].Value })
	return all
}

func runScenario(factory core.Factory, key, input string, sc Scenario) Result {
	res := Result{Value: sc.Value}
	solver := factory(sc.Params)
	if err := core.CheckParams(solver, map[string]string{key: strconv.Itoa(sc.Value)}); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	res.Result, res.Err = core.Solve(solver, input)
	res.Elapsed = time.Since(start)
	return res
}

// Print writes one row per result. Multi-line answers are replaced by their
// line count.
func Print(w io.Writer, key string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tpart one\tpart two\telapsed\n", key)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%d\terror: %v\t\t\n", r.Value, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Value, cell(r.Result.PartOne), cell(r.Result.PartTwo), r.Elapsed.Round(time.Microsecond))
	}
	return tw.Flush()
}

func cell(answer string) string {
	lines := core.Lines(answer)
	if len(lines) > 1 {
		return fmt.Sprintf("(%d lines)", len(lines))
	}
	return answer
}
