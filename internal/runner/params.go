package runner

import (
	"fmt"
	"io"
	"text/tabwriter"

	"advent-ca/internal/core"
)

// PrintParams lists the tunables of each job's solver with the values the
// job would use.
func PrintParams(w io.Writer, jobs []Job) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, job := range jobs {
		_, factory, err := core.Lookup(job.Day)
		if err != nil {
			return err
		}
		solver := factory(job.Params)
		fmt.Fprintf(tw, "%s (%s)\n", job.Day, solver.Name())
		provider, ok := solver.(core.ParametersProvider)
		if !ok {
			fmt.Fprintln(tw, "  no tunables")
			continue
		}
		for _, g := range provider.Parameters().Groups {
			for _, p := range g.Params {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Key, p.Value, p.Label)
			}
		}
	}
	return tw.Flush()
}
