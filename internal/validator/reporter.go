package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

type issueJSON struct {
	Severity string            `json:"severity"`
	Field    string            `json:"field,omitempty"`
	Message  string            `json:"message"`
	Value    any               `json:"value,omitempty"`
	Context  map[string]string `json:"context,omitempty"`
}

func (r *Reporter) reportJSON(result *Result) error {
	issues := make([]issueJSON, len(result.Issues))
	for i, issue := range result.Issues {
		issues[i] = issueJSON{
			Severity: issue.Severity.String(),
			Field:    issue.Field,
			Message:  issue.Message,
			Value:    issue.Value,
			Context:  issue.Context,
		}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(issues), "encoding validation report")
}

func (r *Reporter) reportText(result *Result) error {
	errColor := color.New(color.FgRed)
	warnColor := color.New(color.FgYellow)

	if errs := result.Errors(); len(errs) > 0 {
		fmt.Fprintf(r.out, "  %s:\n", errColor.Sprint("Errors"))
		for _, issue := range errs {
			r.printIssue(issue)
		}
	}

	if warns := result.Warnings(); len(warns) > 0 {
		fmt.Fprintf(r.out, "  %s:\n", warnColor.Sprint("Warnings"))
		for _, issue := range warns {
			r.printIssue(issue)
		}
	}

	return nil
}

func (r *Reporter) printIssue(issue Issue) {
	if issue.Field != "" {
		fmt.Fprintf(r.out, "    - %s: %s", issue.Field, issue.Message)
	} else {
		fmt.Fprintf(r.out, "    - %s", issue.Message)
	}
	if issue.Value != nil {
		fmt.Fprintf(r.out, " (got %v)", issue.Value)
	}
	fmt.Fprintln(r.out)
}
