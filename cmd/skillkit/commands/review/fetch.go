package review

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/internal/config"
	skerrors "github.com/skillkit-dev/skillkit/internal/errors"
	"github.com/skillkit-dev/skillkit/internal/git"
	"github.com/skillkit-dev/skillkit/internal/logging"
	"github.com/skillkit-dev/skillkit/internal/review"
)

var (
	fetchPR              int
	fetchRepo            string
	fetchAuthor          string
	fetchIncludeResolved bool
)

func init() {
	fetchCmd.Flags().IntVar(&fetchPR, "pr", 0,
		"pull request number (default: the open PR for the current branch)")
	fetchCmd.Flags().StringVar(&fetchRepo, "repo", "",
		"repository as owner/name (default: the origin remote)")
	fetchCmd.Flags().StringVar(&fetchAuthor, "author", "",
		"comment author to keep (default: "+config.DefaultReviewAuthor+")")
	fetchCmd.Flags().BoolVar(&fetchIncludeResolved, "include-resolved", false,
		"keep comments in resolved review threads")
	Cmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch unresolved bot review comments as JSON",
	Long: `Fetch the inline review comments a bot reviewer left on a pull
request, drop the ones whose review thread is already resolved, and print
the rest as a JSON array on stdout.

The repository defaults to the origin remote of the working directory and
the pull request to the single open PR for the checked-out branch. All
diagnostics go to stderr; stdout carries only the JSON array, which is []
when nothing is left.

Exit codes:
  0 - Success, including an empty result
  1 - Bad usage: no token, no resolvable pull request, bad --repo
  2 - GitHub API or network failure`,
	Example: `  # Current branch's PR, CodeRabbit comments
  skillkit review fetch

  # Explicit PR and repository
  skillkit review fetch --repo acme/widgets --pr 42

  # A different bot, keeping resolved threads
  skillkit review fetch --author renovate[bot] --include-resolved`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	token := config.Token()
	if token == "" {
		return skerrors.NewUserError(skerrors.ErrMissingToken,
			"Set SKILLKIT_TOKEN or GITHUB_TOKEN")
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	slug := fetchRepo
	if slug == "" {
		slug = cfg.Review.Repo
	}
	if slug == "" {
		slug, err = git.OriginSlug(".")
		if err != nil {
			return skerrors.NewUserError(err,
				"Pass --repo owner/name when outside a git repository")
		}
	}
	owner, repo, err := review.SplitRepo(slug)
	if err != nil {
		return skerrors.NewUserError(err, "Pass --repo owner/name")
	}

	client := review.NewClient(token)

	pr := fetchPR
	if pr == 0 {
		branch, err := git.CurrentBranch(".")
		if err != nil {
			return skerrors.NewUserError(err,
				"Pass --pr when the branch cannot be determined")
		}
		pr, err = client.ResolvePullRequest(ctx, owner, repo, branch)
		if err != nil {
			if errors.Is(err, skerrors.ErrNoPullRequest) {
				return skerrors.NewUserError(err, "Open a pull request or pass --pr")
			}
			return skerrors.NewSystemError(err, "Check network and token scopes")
		}
		logger.Debug("resolved pull request", "branch", branch, "pr", pr)
	}

	author := fetchAuthor
	if author == "" {
		author = cfg.Review.Author
	}

	comments, err := client.Fetch(ctx, logger, review.FetchOptions{
		Owner:           owner,
		Repo:            repo,
		PR:              pr,
		Author:          author,
		IncludeResolved: fetchIncludeResolved,
	})
	if err != nil {
		return skerrors.NewSystemError(err, "Check network and token scopes")
	}

	logger.Info("fetched review comments",
		"repo", slug, "pr", pr, "author", author, "count", len(comments))

	return review.Encode(cmd.OutOrStdout(), comments)
}
