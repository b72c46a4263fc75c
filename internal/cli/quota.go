package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tonyroud/replicheck/internal/infra/replica/dfsr"
	"github.com/tonyroud/replicheck/internal/quota"
)

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Recommend a staging quota per replicated folder",
	Long:  `Sums the sizes of the 32 largest files under each folder's content path and prints the recommended staging quota in whole megabytes.`,
	Run:   runQuota,
}

func init() {
	rootCmd.AddCommand(quotaCmd)
}

func runQuota(cmd *cobra.Command, args []string) {
	cfg := setup()
	provider := dfsr.NewProvider()

	folders, err := provider.ListReplicatedFolders(context.Background(), cfg.Node.ComputerName)
	if err != nil {
		slog.Error("Failed to enumerate replicated folders", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "FOLDER\tCONTENT PATH\tRECOMMENDED MB")

	for _, f := range folders {
		mb, err := quota.RecommendedMB(f.ContentPath)
		if err != nil {
			slog.Warn("Skipping folder", "folder", f.FolderName, "error", err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", f.FolderName, f.ContentPath, mb)
	}
	_ = w.Flush()
}
