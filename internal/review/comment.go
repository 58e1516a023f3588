// Package review implements the review-comment fetch pipeline: list a pull
// request's review comments over REST, collect resolved-thread comment IDs
// over GraphQL, and emit the unresolved bot comments as a JSON array.
package review

import (
	"encoding/json"
	"io"
	"time"
)

// Comment is one review comment in the output payload. Field order matches
// the emitted JSON. The author login is carried for filtering only and is
// never serialized.
type Comment struct {
	Path        string    `json:"path"`
	Line        *int      `json:"line"`
	Side        string    `json:"side"`
	Body        string    `json:"body"`
	URL         string    `json:"url"`
	ID          int64     `json:"id"`
	InReplyToID *int64    `json:"in_reply_to_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	authorLogin string
}

// AuthorLogin returns the comment author's login.
func (c Comment) AuthorLogin() string {
	return c.authorLogin
}

// IsThreadRoot reports whether the comment starts a thread.
func (c Comment) IsThreadRoot() bool {
	return c.InReplyToID == nil
}

// Encode writes comments as an indented JSON array. An empty input writes
// exactly "[]", never null.
func Encode(w io.Writer, comments []Comment) error {
	if comments == nil {
		comments = []Comment{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(comments)
}
