package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	"github.com/skillkit-dev/skillkit/internal/config"
	"github.com/skillkit-dev/skillkit/internal/doctor"
	skerrors "github.com/skillkit-dev/skillkit/internal/errors"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment issues",
	Long: `Run diagnostic checks on the skillkit environment.

Verifies the GitHub token, the git repository and origin remote that
pull-request resolution needs, the skills directory, and the corpus
manifest with its pinned skills.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// doctorReport is the JSON output shape.
type doctorReport struct {
	Results []doctor.CheckResult `json:"results"`
	Summary doctor.Summary       `json:"summary"`
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	checks := doctor.DefaultChecks(corpus.SkillsDir)
	for _, c := range checks {
		if tc, ok := c.(*doctor.TokenCheck); ok {
			tc.Lookup = config.Token
		}
	}

	report := doctorReport{Results: doctor.RunAll(checks)}
	report.Summary = doctor.Summarize(report.Results)

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	switch {
	case report.Summary.Errors > 0:
		return skerrors.NewExitError(errors.New("doctor found errors"), skerrors.ExitSystem)
	case report.Summary.Warnings > 0:
		return skerrors.NewExitError(errors.New("doctor found warnings"), skerrors.ExitUser)
	}
	return nil
}

func outputDoctorReport(w io.Writer, report doctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	return outputDoctorText(w, report)
}

func outputDoctorText(w io.Writer, report doctorReport) error {
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n",
			statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}
