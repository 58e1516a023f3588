package skill

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/internal/errors"
	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
	"github.com/skillkit-dev/skillkit/internal/skill/parser"
	skillvalidator "github.com/skillkit-dev/skillkit/internal/skill/validator"
	"github.com/skillkit-dev/skillkit/internal/validator"
)

var (
	validateStrict bool
	validateJSON   bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"enable strict validation (validates allowed-tools syntax)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	Cmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill bundle",
	Long: `Validate a skill bundle without installing it.

Parses and validates the bundle at the given path. The path should be a
directory containing a SKILL.md file.

Use --strict to also validate allowed-tools syntax.
Use --json for machine-readable output.

Exit codes:
  0 - Skill is valid
  1 - Skill validation failed`,
	Example: `  # Validate skill in current directory
  skillkit skill validate .

  # Validate skill in specific directory
  skillkit skill validate ./skills/pr-triage

  # Strict validation (checks allowed-tools syntax)
  skillkit skill validate ./skills/pr-triage --strict

  # Output validation results as JSON
  skillkit skill validate ./skills/pr-triage --json

  See Also:
    skillkit skill init     - Create a new skill
    skillkit skill install  - Install a skill`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

// validateResult represents the JSON output structure.
type validateResult struct {
	Valid      bool       `json:"valid"`
	Skill      *skillMeta `json:"skill,omitempty"`
	Errors     []string   `json:"errors,omitempty"`
	ParseError string     `json:"parse_error,omitempty"`
	Path       string     `json:"path"`
	StrictMode bool       `json:"strict_mode"`
}

// skillMeta contains skill metadata for display.
type skillMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	License     string `json:"license,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	skillPath := args[0]

	// Resolve to absolute path for consistent error messages
	absPath, err := filepath.Abs(skillPath)
	if err != nil {
		absPath = skillPath
	}

	skillFile := filepath.Join(absPath, skillpkg.FileName)

	s, parseErr := parser.New().ParseFile(skillFile)
	if parseErr != nil {
		return outputParseError(cmd.OutOrStdout(), absPath, parseErr)
	}

	v := skillvalidator.New(skillvalidator.WithStrict(validateStrict))
	result := v.ValidateWithPath(s, skillFile)

	if result.HasErrors() {
		return outputValidationErrors(cmd.OutOrStdout(), absPath, result)
	}

	return outputSuccess(cmd.OutOrStdout(), absPath, s)
}

func outputParseError(w io.Writer, path string, err error) error {
	if validateJSON {
		result := validateResult{
			Valid:      false,
			Path:       path,
			StrictMode: validateStrict,
			ParseError: formatParseError(err),
		}
		return outputValidateJSON(w, result)
	}

	fmt.Fprintln(w, "[FAIL] Skill validation failed")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Parse error:\n")
	fmt.Fprintf(w, "    - %s\n", formatParseError(err))
	return errValidationFailed
}

func outputValidationErrors(w io.Writer, path string, result *validator.Result) error {
	if validateJSON {
		errStrings := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			errStrings[i] = e.Error()
		}
		res := validateResult{
			Valid:      false,
			Path:       path,
			StrictMode: validateStrict,
			Errors:     errStrings,
		}
		return outputValidateJSON(w, res)
	}

	fmt.Fprintln(w, "[FAIL] Skill validation failed")
	fmt.Fprintln(w)

	reporter := validator.NewReporter(w, validator.FormatText)
	_ = reporter.Report(result)

	return errValidationFailed
}

func outputSuccess(w io.Writer, path string, s *skillpkg.Skill) error {
	if validateJSON {
		result := validateResult{
			Valid:      true,
			Path:       path,
			StrictMode: validateStrict,
			Skill: &skillMeta{
				Name:        s.Name,
				Description: s.Description,
				License:     s.License,
			},
		}
		return outputValidateJSON(w, result)
	}

	fmt.Fprintf(w, "[OK] Skill '%s' is valid\n", s.Name)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Name:        %s\n", s.Name)
	fmt.Fprintf(w, "  Description: %s\n", s.Description)
	if s.License != "" {
		fmt.Fprintf(w, "  License:     %s\n", s.License)
	}
	return nil
}

func outputValidateJSON(w io.Writer, result validateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.NewSystemError(err, "encoding JSON failed")
	}
	if !result.Valid {
		return errValidationFailed
	}
	return nil
}

// formatParseError extracts a user-friendly message from parse errors.
func formatParseError(err error) string {
	var parseErr *parser.ParseError
	if stderrors.As(err, &parseErr) {
		if os.IsNotExist(parseErr.Err) {
			return "SKILL.md not found in directory"
		}
		return parseErr.Err.Error()
	}
	return err.Error()
}

// errValidationFailed is a sentinel error that signals non-zero exit.
var errValidationFailed = errors.NewExitError(stderrors.New("validation failed"), errors.ExitUser)
