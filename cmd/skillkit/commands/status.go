package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/cli"
	"github.com/skillkit-dev/skillkit/internal/config"
	"github.com/skillkit-dev/skillkit/internal/git"
	"github.com/skillkit-dev/skillkit/internal/logging"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus and environment overview",
	Long: `Show a one-screen overview: the resolved skills directory, the corpus
manifest, the number of skills found, and whether a GitHub token and git
remote are available for the review commands.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	corpus, err := cli.ResolveCorpus(flags.GetSkillsDir())
	if err != nil {
		return err
	}

	infos, err := corpus.Scan(logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%sCorpus%s\n", colorBold, colorReset)
	fmt.Fprintf(w, "  skills dir:  %s\n", corpus.SkillsDir)
	if corpus.Manifest != nil {
		fmt.Fprintf(w, "  manifest:    %s", corpus.Manifest.Registry.Name)
		if desc := corpus.Manifest.Registry.Description; desc != "" {
			fmt.Fprintf(w, " %s(%s)%s", colorGray, truncate(desc, 50), colorReset)
		}
		fmt.Fprintln(w)
		if len(corpus.Manifest.Pinned) > 0 {
			fmt.Fprintf(w, "  pinned:      %d\n", len(corpus.Manifest.Pinned))
		}
	} else {
		fmt.Fprintf(w, "  manifest:    %snone%s\n", colorGray, colorReset)
	}
	fmt.Fprintf(w, "  skills:      %d\n", len(infos))

	fmt.Fprintf(w, "\n%sReview%s\n", colorBold, colorReset)
	printTokenStatus(w)
	printRepoStatus(w)

	return nil
}

func printTokenStatus(w io.Writer) {
	if config.Token() != "" {
		fmt.Fprintf(w, "  token:       %sconfigured%s\n", colorGreen, colorReset)
	} else {
		fmt.Fprintf(w, "  token:       %smissing%s (set SKILLKIT_TOKEN or GITHUB_TOKEN)\n",
			colorYellow, colorReset)
	}
}

func printRepoStatus(w io.Writer) {
	slug, err := git.OriginSlug(".")
	if err != nil {
		fmt.Fprintf(w, "  repository:  %snot detected%s (pass --repo to review fetch)\n",
			colorYellow, colorReset)
		return
	}
	fmt.Fprintf(w, "  repository:  %s%s%s\n", colorCyan, slug, colorReset)
}
