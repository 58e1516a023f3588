package toolperm

import "fmt"

// ToolPermError represents a tool permission parsing failure.
type ToolPermError struct {
	Token   string
	Message string
}

func (e *ToolPermError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid tool permission: %s", e.Message)
	}
	return fmt.Sprintf("invalid tool permission %q: %s", e.Token, e.Message)
}
