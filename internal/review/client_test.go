package review

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillkit-dev/skillkit/internal/errors"
	"github.com/skillkit-dev/skillkit/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClientWithHTTPClient(srv.Client(), srv.URL, "test-token")
	require.NoError(t, err)
	return client
}

func restComment(id int64, login string, inReplyTo *int64) map[string]any {
	c := map[string]any{
		"id":         id,
		"path":       "skills/pr-triage/SKILL.md",
		"line":       3,
		"side":       "RIGHT",
		"body":       fmt.Sprintf("comment %d", id),
		"html_url":   fmt.Sprintf("https://github.com/octo/demo/pull/7#discussion_r%d", id),
		"created_at": "2026-01-02T03:04:05Z",
		"updated_at": "2026-01-02T03:04:06Z",
		"user":       map[string]any{"login": login},
	}
	if inReplyTo != nil {
		c["in_reply_to_id"] = *inReplyTo
	}
	return c
}

func TestFetchReviewCommentsPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo/pulls/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode([]map[string]any{
				restComment(3, "coderabbitai[bot]", int64Ptr(1)),
			})
			return
		}
		w.Header().Set("Link",
			fmt.Sprintf(`<http://%s/repos/octo/demo/pulls/7/comments?page=2>; rel="next"`, r.Host))
		json.NewEncoder(w).Encode([]map[string]any{
			restComment(1, "coderabbitai[bot]", nil),
			restComment(2, "octocat", nil),
		})
	})

	client := newTestClient(t, mux)

	comments, err := client.FetchReviewComments(context.Background(), "octo", "demo", 7)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	assert.Equal(t, int64(1), comments[0].ID)
	assert.Equal(t, "coderabbitai[bot]", comments[0].AuthorLogin())
	assert.Nil(t, comments[0].InReplyToID)
	require.NotNil(t, comments[2].InReplyToID)
	assert.Equal(t, int64(1), *comments[2].InReplyToID)
	require.NotNil(t, comments[0].Line)
	assert.Equal(t, 3, *comments[0].Line)
	assert.Equal(t, "RIGHT", comments[0].Side)
}

func graphqlPage(resolvedIDs []int64, unresolvedIDs []int64, endCursor string, hasNext bool) map[string]any {
	node := func(resolved bool, ids []int64) map[string]any {
		comments := make([]map[string]any, len(ids))
		for i, id := range ids {
			comments[i] = map[string]any{"databaseId": id}
		}
		return map[string]any{
			"isResolved": resolved,
			"comments":   map[string]any{"nodes": comments},
		}
	}

	nodes := []map[string]any{}
	if len(resolvedIDs) > 0 {
		nodes = append(nodes, node(true, resolvedIDs))
	}
	if len(unresolvedIDs) > 0 {
		nodes = append(nodes, node(false, unresolvedIDs))
	}

	return map[string]any{
		"data": map[string]any{
			"repository": map[string]any{
				"pullRequest": map[string]any{
					"reviewThreads": map[string]any{
						"pageInfo": map[string]any{
							"hasNextPage": hasNext,
							"endCursor":   endCursor,
						},
						"nodes": nodes,
					},
				},
			},
		},
	}
}

func TestFetchResolvedCommentIDsPagination(t *testing.T) {
	var cursors []string

	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		cursor, _ := req.Variables["cursor"].(string)
		cursors = append(cursors, cursor)

		w.Header().Set("Content-Type", "application/json")
		if cursor == "" {
			// Page one: one resolved thread with a root and a reply, one
			// unresolved thread.
			json.NewEncoder(w).Encode(graphqlPage([]int64{1, 3}, []int64{2}, "cursor-1", true))
			return
		}
		json.NewEncoder(w).Encode(graphqlPage([]int64{4}, nil, "", false))
	})

	client := newTestClient(t, mux)

	resolved, err := client.FetchResolvedCommentIDs(context.Background(), "octo", "demo", 7)
	require.NoError(t, err)

	// Union across pages, order-independent; unresolved thread IDs absent.
	assert.Equal(t, map[int64]struct{}{1: {}, 3: {}, 4: {}}, resolved)
	assert.Equal(t, []string{"", "cursor-1"}, cursors)
}

func TestFetchResolvedCommentIDsGraphQLError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "Could not resolve to a PullRequest"}},
		})
	})

	client := newTestClient(t, mux)

	_, err := client.FetchResolvedCommentIDs(context.Background(), "octo", "demo", 404)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not resolve to a PullRequest")
}

func TestResolvePullRequest(t *testing.T) {
	prs := []map[string]any{}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "octo:feature/fetch", r.URL.Query().Get("head"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prs)
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	// No open PR for the branch.
	_, err := client.ResolvePullRequest(ctx, "octo", "demo", "feature/fetch")
	assert.ErrorIs(t, err, errors.ErrNoPullRequest)

	// Exactly one match.
	prs = []map[string]any{{"number": 7}}
	number, err := client.ResolvePullRequest(ctx, "octo", "demo", "feature/fetch")
	require.NoError(t, err)
	assert.Equal(t, 7, number)

	// Ambiguous.
	prs = []map[string]any{{"number": 7}, {"number": 8}}
	_, err = client.ResolvePullRequest(ctx, "octo", "demo", "feature/fetch")
	assert.Error(t, err)
}

func TestFetchPipeline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo/pulls/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			restComment(1, "coderabbitai[bot]", nil),          // resolved, dropped
			restComment(2, "coderabbitai[bot]", nil),          // unresolved, kept
			restComment(3, "octocat", nil),                    // wrong author, dropped
			restComment(4, "coderabbitai[bot]", int64Ptr(1)),  // reply in resolved thread, dropped
		})
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(graphqlPage([]int64{1, 4}, []int64{2}, "", false))
	})

	client := newTestClient(t, mux)

	comments, err := client.Fetch(context.Background(), logging.ForTest(t), FetchOptions{
		Owner:  "octo",
		Repo:   "demo",
		PR:     7,
		Author: "coderabbitai[bot]",
	})
	require.NoError(t, err)

	require.Len(t, comments, 1)
	assert.Equal(t, int64(2), comments[0].ID)
}

func TestFetchPipelineEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo/pulls/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			restComment(3, "octocat", nil),
		})
	})

	client := newTestClient(t, mux)

	// Zero bot comments: result is an empty, non-nil slice and the GraphQL
	// endpoint is never consulted.
	comments, err := client.Fetch(context.Background(), logging.ForTest(t), FetchOptions{
		Owner:  "octo",
		Repo:   "demo",
		PR:     7,
		Author: "coderabbitai[bot]",
	})
	require.NoError(t, err)
	require.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestSplitRepo(t *testing.T) {
	owner, repo, err := SplitRepo("octo/demo")
	require.NoError(t, err)
	assert.Equal(t, "octo", owner)
	assert.Equal(t, "demo", repo)

	for _, bad := range []string{"", "octo", "octo/demo/extra", "/demo", "octo/"} {
		_, _, err := SplitRepo(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
