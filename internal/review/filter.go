package review

// FilterByAuthor keeps only comments written by the given login. An empty
// author keeps everything.
func FilterByAuthor(comments []Comment, author string) []Comment {
	if author == "" {
		return comments
	}
	kept := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if c.authorLogin == author {
			kept = append(kept, c)
		}
	}
	return kept
}

// ExcludeResolved drops every comment whose ID appears in the resolved set.
// The set holds the IDs of all comments belonging to resolved review
// threads, so replies are excluded along with their thread roots.
func ExcludeResolved(comments []Comment, resolved map[int64]struct{}) []Comment {
	if len(resolved) == 0 {
		return comments
	}
	kept := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if _, ok := resolved[c.ID]; ok {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
