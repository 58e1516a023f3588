package review

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	skerrors "github.com/skillkit-dev/skillkit/internal/errors"
)

// Client talks to the GitHub REST and GraphQL APIs for one repository.
type Client struct {
	gh         *gh.Client
	token      string // kept for the GraphQL Authorization header
	graphqlURL string
	httpClient *http.Client
}

// NewClient creates a Client with the production transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (sleeps through secondary rate limits)
//  3. go-github with token auth
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	return &Client{
		gh:         client,
		token:      token,
		graphqlURL: "https://api.github.com/graphql",
		httpClient: rateLimitClient,
	}
}

// NewClientWithHTTPClient creates a Client against a custom base URL, for
// tests backed by httptest servers. The GraphQL endpoint is derived from
// the base URL so the same server can intercept both APIs.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, token string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing base URL")
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	client.BaseURL = u

	graphqlU := *u
	graphqlU.Path = "/graphql"

	return &Client{
		gh:         client,
		token:      token,
		graphqlURL: graphqlU.String(),
		httpClient: httpClient,
	}, nil
}

// SplitRepo splits an "owner/name" slug.
func SplitRepo(slug string) (owner, repo string, err error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Newf("invalid repository %q (expected owner/name)", slug)
	}
	return parts[0], parts[1], nil
}

// ResolvePullRequest finds the single open pull request whose head ref is
// the given branch. Zero matches maps to ErrNoPullRequest; more than one is
// ambiguous and also an error.
func (c *Client) ResolvePullRequest(ctx context.Context, owner, repo, branch string) (int, error) {
	opts := &gh.PullRequestListOptions{
		State:       "open",
		Head:        owner + ":" + branch,
		ListOptions: gh.ListOptions{PerPage: 10},
	}

	prs, _, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return 0, errors.Wrapf(err, "listing pull requests for branch %s", branch)
	}

	switch len(prs) {
	case 0:
		return 0, errors.Wrapf(skerrors.ErrNoPullRequest, "branch %s", branch)
	case 1:
		return prs[0].GetNumber(), nil
	default:
		return 0, errors.Newf("branch %s has %d open pull requests, pass --pr", branch, len(prs))
	}
}

// FetchReviewComments lists all review comments (inline code comments) on a
// pull request, following REST pagination.
func (c *Client) FetchReviewComments(ctx context.Context, owner, repo string, prNumber int) ([]Comment, error) {
	opts := &gh.PullRequestListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var all []Comment

	for {
		comments, resp, err := c.gh.PullRequests.ListComments(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "listing review comments for %s/%s#%d (page %d)",
				owner, repo, prNumber, opts.Page)
		}

		for _, comment := range comments {
			all = append(all, mapComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// mapComment converts a go-github PullRequestComment into the output model.
func mapComment(c *gh.PullRequestComment) Comment {
	var line *int
	if c.Line != nil {
		v := *c.Line
		line = &v
	}
	var inReplyTo *int64
	if c.InReplyTo != nil {
		v := *c.InReplyTo
		inReplyTo = &v
	}

	return Comment{
		Path:        c.GetPath(),
		Line:        line,
		Side:        c.GetSide(),
		Body:        c.GetBody(),
		URL:         c.GetHTMLURL(),
		ID:          c.GetID(),
		InReplyToID: inReplyTo,
		CreatedAt:   c.GetCreatedAt().Time,
		UpdatedAt:   c.GetUpdatedAt().Time,
		authorLogin: c.GetUser().GetLogin(),
	}
}
