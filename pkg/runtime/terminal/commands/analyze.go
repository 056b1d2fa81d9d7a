package commands

import (
	"fmt"

	"github.com/revlytic/bplan/pkg/models/domain"
	"github.com/revlytic/bplan/pkg/services/plan"
	"github.com/revlytic/bplan/pkg/services/projection"
	"github.com/revlytic/bplan/pkg/services/report"
	"github.com/spf13/cobra"
)

// ReportHandler renders a finished report; both the console and the export
// table reporter satisfy it.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type AnalyzeCmd struct {
	planPath  string
	format    string
	reporters map[string]ReportHandler
}

func NewAnalyzeCmd(reporters map[string]ReportHandler) *cobra.Command {
	ac := &AnalyzeCmd{reporters: reporters}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Project a business plan file and print the P&L report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.planPath, "plan", "", "Path to the plan file (YAML)")
	cmd.Flags().StringVar(&ac.format, "format", "table", "Output format: table or text")

	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	reporter, ok := ac.reporters[ac.format]
	if !ok {
		return fmt.Errorf("unsupported format %q. Supported formats: table, text", ac.format)
	}

	p, years, err := plan.LoadDocument(ac.planPath)
	if err != nil {
		return fmt.Errorf("failed to load plan %s: %w", ac.planPath, err)
	}

	if len(years) == 0 {
		return fmt.Errorf("plan %s defines no projection years", ac.planPath)
	}

	outcomes := projection.ComputePlan(p, years)
	document := report.Build(p, outcomes)

	return reporter.Handle(&document)
}
