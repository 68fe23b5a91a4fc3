package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"news-pipeline/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion pass",
	Long: `Fetch every enabled source in order, classify, score and store the
new articles. Exits non-zero only when the run failed as a whole.

Examples:
  newsctl ingest
  newsctl ingest --force
  newsctl ingest --single-category --lang en,fr`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().Bool("force", false, "bypass the cache gate")
	ingestCmd.Flags().Bool("single-category", false, "fetch only the first configured category per source")
	ingestCmd.Flags().StringSlice("lang", nil, "languages to request (default from INGEST_LANGUAGES)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	single, _ := cmd.Flags().GetBool("single-category")
	langs, _ := cmd.Flags().GetStringSlice("lang")

	ctx := cmd.Context()
	rt, err := openRuntime(ctx)
	if err != nil {
		return fmt.Errorf("open runtime: %w", err)
	}
	defer rt.Close()

	report, runErr := rt.ingest.Execute(ctx, domain.IngestOptions{
		ForceUpdate:    force,
		SingleCategory: single,
		Languages:      langs,
	})
	if report != nil {
		if err := printReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("ingest: %w", runErr)
	}
	return nil
}

func printReport(w io.Writer, report *domain.IngestReport) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "run %s: %s (inserted %d, failed %d, %s)\n",
		report.RunID, report.Status, report.Inserted, report.Failed,
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tSTATUS\tFETCHED\tVALID\tDUPLICATES\tINSERTED\tFAILED\tNOTE")
	for _, s := range report.Sources {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			s.SourceID, s.Status, s.Detail.Fetched, s.Detail.Valid,
			s.Detail.Duplicates, s.Detail.Inserted, s.Detail.Failed, note(s.Detail))
	}
	return tw.Flush()
}

func note(d domain.RunDetail) string {
	switch {
	case d.Error != "" && d.RetryAfter != "":
		return fmt.Sprintf("%s (retry after %s)", d.Error, d.RetryAfter)
	case d.Error != "":
		return d.Error
	case d.FromCache:
		return "cached"
	}
	return ""
}
