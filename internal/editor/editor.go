// Package editor launches the user's preferred text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// Open launches an editor for the given path, resolving the command from
// $EDITOR, then $VISUAL, then nano, then vi.
func Open(path string) error {
	fmt.Printf("Location: %s\n", path)

	cmd := exec.Command(detect(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

func detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	// vi is the POSIX fallback, present everywhere.
	return "vi"
}
