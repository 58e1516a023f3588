package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/internal/config"
	"github.com/skillkit-dev/skillkit/internal/manifest"
	"github.com/skillkit-dev/skillkit/internal/paths"
	"github.com/skillkit-dev/skillkit/pkg/fileutil"
)

var initRegistryName string

func init() {
	initCmd.Flags().StringVar(&initRegistryName, "name", "",
		"registry name written to the corpus manifest (default: skills directory name)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize skillkit configuration and corpus layout",
	Long: `Bootstrap skillkit: write a starter config file, create the skills
directory, and write a skillset.toml corpus manifest.

Existing files are left untouched; init is safe to re-run.`,
	Example: `  # Initialize with defaults
  skillkit init

  # Initialize a corpus in an explicit directory
  skillkit init --skills-dir ~/src/skills --name team-skills`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	configPath, err := config.WriteDefault()
	if err == nil {
		fmt.Fprintf(out, "Created %s\n", configPath)
	} else if configPath != "" {
		// WriteDefault refuses to clobber; report and continue.
		fmt.Fprintf(out, "Config already exists at %s\n", configPath)
	} else {
		return err
	}

	corpusDir, err := paths.SkillsDir(flags.GetSkillsDir())
	if err != nil {
		return err
	}
	if err := paths.EnsureDir(corpusDir, 0o755); err != nil {
		return errors.Wrap(err, "creating skills directory")
	}
	fmt.Fprintf(out, "Skills directory: %s\n", corpusDir)

	manifestPath := paths.ManifestPath(corpusDir)
	if _, err := os.Stat(manifestPath); err == nil {
		fmt.Fprintf(out, "Manifest already exists at %s\n", manifestPath)
		return nil
	}

	name := initRegistryName
	if name == "" {
		name = filepath.Base(corpusDir)
	}

	m := manifest.Manifest{
		Registry: manifest.Registry{
			Name:        name,
			Description: "Skill corpus managed by skillkit",
		},
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encoding manifest")
	}
	if err := fileutil.AtomicWriteFile(manifestPath, data, 0o644); err != nil {
		return errors.Wrap(err, "writing manifest")
	}
	fmt.Fprintf(out, "Created %s\n", manifestPath)

	return nil
}
