package review

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// resolvedThreadsQuery pages through a pull request's review threads,
// collecting the database IDs of every comment in a resolved thread.
const resolvedThreadsQuery = `query($owner: String!, $repo: String!, $pr: Int!, $cursor: String) {
	repository(owner: $owner, name: $repo) {
		pullRequest(number: $pr) {
			reviewThreads(first: 100, after: $cursor) {
				pageInfo {
					hasNextPage
					endCursor
				}
				nodes {
					isResolved
					comments(first: 100) {
						nodes {
							databaseId
						}
					}
				}
			}
		}
	}
}`

// graphqlRequest is the JSON body sent to the GitHub GraphQL API.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphqlResponse is the expected response shape for the resolved-threads
// query.
type graphqlResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				ReviewThreads struct {
					PageInfo struct {
						HasNextPage bool   `json:"hasNextPage"`
						EndCursor   string `json:"endCursor"`
					} `json:"pageInfo"`
					Nodes []struct {
						IsResolved bool `json:"isResolved"`
						Comments   struct {
							Nodes []struct {
								DatabaseID int64 `json:"databaseId"`
							} `json:"nodes"`
						} `json:"comments"`
					} `json:"nodes"`
				} `json:"reviewThreads"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchResolvedCommentIDs returns the set of comment database IDs that
// belong to resolved review threads on the pull request. The thread list is
// cursor-paginated; each page has a hard dependency on the previous page's
// cursor, so pages are fetched sequentially and the per-page ID sets are
// unioned.
func (c *Client) FetchResolvedCommentIDs(ctx context.Context, owner, repo string, prNumber int) (map[int64]struct{}, error) {
	resolved := make(map[int64]struct{})

	var cursor *string
	for {
		page, err := c.fetchThreadPage(ctx, owner, repo, prNumber, cursor)
		if err != nil {
			return nil, err
		}

		threads := page.Data.Repository.PullRequest.ReviewThreads
		for _, thread := range threads.Nodes {
			if !thread.IsResolved {
				continue
			}
			for _, comment := range thread.Comments.Nodes {
				if comment.DatabaseID != 0 {
					resolved[comment.DatabaseID] = struct{}{}
				}
			}
		}

		if !threads.PageInfo.HasNextPage {
			return resolved, nil
		}
		next := threads.PageInfo.EndCursor
		cursor = &next
	}
}

func (c *Client) fetchThreadPage(ctx context.Context, owner, repo string, prNumber int, cursor *string) (*graphqlResponse, error) {
	variables := map[string]any{
		"owner": owner,
		"repo":  repo,
		"pr":    prNumber,
	}
	if cursor != nil {
		variables["cursor"] = *cursor
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     resolvedThreadsQuery,
		Variables: variables,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshaling GraphQL request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "creating GraphQL request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("bearer %s", c.token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GraphQL request for %s/%s#%d", owner, repo, prNumber)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("GraphQL request for %s/%s#%d: HTTP %d",
			owner, repo, prNumber, resp.StatusCode)
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, errors.Wrap(err, "decoding GraphQL response")
	}

	if len(gqlResp.Errors) > 0 {
		return nil, errors.Newf("GraphQL error for %s/%s#%d: %s",
			owner, repo, prNumber, gqlResp.Errors[0].Message)
	}

	return &gqlResp, nil
}
