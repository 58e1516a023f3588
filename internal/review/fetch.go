package review

import (
	"context"
	"log/slog"
)

// FetchOptions controls one fetch run.
type FetchOptions struct {
	// Owner and Repo identify the repository.
	Owner string
	Repo  string

	// PR is the pull request number.
	PR int

	// Author keeps only comments by this login; empty keeps all authors.
	Author string

	// IncludeResolved skips the resolved-thread subtraction.
	IncludeResolved bool
}

// Fetch runs the full pipeline: REST comment list, author filter, and
// unless disabled the GraphQL resolved-thread subtraction. The result is
// never nil; zero matches yield an empty slice.
func (c *Client) Fetch(ctx context.Context, logger *slog.Logger, opts FetchOptions) ([]Comment, error) {
	comments, err := c.FetchReviewComments(ctx, opts.Owner, opts.Repo, opts.PR)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched review comments",
		"repo", opts.Owner+"/"+opts.Repo, "pr", opts.PR, "total", len(comments))

	comments = FilterByAuthor(comments, opts.Author)
	logger.Debug("filtered by author", "author", opts.Author, "remaining", len(comments))

	if !opts.IncludeResolved && len(comments) > 0 {
		resolved, err := c.FetchResolvedCommentIDs(ctx, opts.Owner, opts.Repo, opts.PR)
		if err != nil {
			return nil, err
		}
		comments = ExcludeResolved(comments, resolved)
		logger.Debug("excluded resolved threads",
			"resolved_ids", len(resolved), "remaining", len(comments))
	}

	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}
