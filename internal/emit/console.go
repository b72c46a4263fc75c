package emit

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// Console renders a report as an operator-facing table.
type Console struct {
	Out io.Writer
}

func (c Console) Emit(ctx context.Context, report domain.Report) error {
	w := tabwriter.NewWriter(c.Out, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "STATUS\tCHECK\tMESSAGE"); err != nil {
		return err
	}
	for _, res := range report.Results {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", res.Status, res.CheckName, res.Message); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.Out, "\nrun %s on %s: %s (%d checks in %s)\n",
		report.RunID, report.Node, report.Overall(), len(report.Results),
		report.Duration.Round(time.Millisecond))
	return err
}
