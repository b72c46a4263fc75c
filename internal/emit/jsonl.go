package emit

import (
	"context"
	"encoding/json"
	"io"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// JSONLines writes one JSON record per check result, each tagged with the
// run identity so records from different passes stay attributable.
type JSONLines struct {
	Out io.Writer
}

type jsonRecord struct {
	RunID     string `json:"run_id"`
	Node      string `json:"node"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	CheckName string `json:"check_name"`
}

func (j JSONLines) Emit(ctx context.Context, report domain.Report) error {
	enc := json.NewEncoder(j.Out)
	for _, res := range report.Results {
		rec := jsonRecord{
			RunID:     report.RunID.String(),
			Node:      report.Node,
			Status:    int(res.Status),
			Message:   res.Message,
			CheckName: res.CheckName,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
