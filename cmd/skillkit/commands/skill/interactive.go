package skill

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"

	skillpkg "github.com/skillkit-dev/skillkit/internal/skill"
)

func runInteractiveSearch(w io.Writer, infos []skillpkg.Info) error {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		infos,
		func(i int) string {
			return fmt.Sprintf("%s: %s", infos[i].Name, infos[i].Description)
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			info := infos[i]
			return fmt.Sprintf("Name: %s\nPath: %s\n\nDescription:\n%s",
				info.Name,
				info.Dir,
				info.Description,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	info := infos[idx]
	fmt.Fprintf(w, "Selected: %s\n", info.Name)
	fmt.Fprintf(w, "Path: %s\n", info.Dir)
	fmt.Fprintf(w, "Description: %s\n", info.Description)

	return nil
}
