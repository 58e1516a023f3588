package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/internal/keygen"
)

var keygenKid string

func init() {
	keygenCmd.Flags().StringVar(&keygenKid, "kid", "",
		"key ID to embed in the JWK")
	rootCmd.AddCommand(keygenCmd)
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an ES256 key pair as JWKs",
	Long: `Generate a P-256 ECDSA key pair for ES256 signing and print it as
JSON Web Keys.

Both JWK forms are printed, followed by a shell-ready line assigning the
compact private JWK to SKILLKIT_REVIEW_KEY. The key is verified with a
sign/verify round trip before anything is printed.`,
	Example: `  skillkit keygen

  # Embed a key ID
  skillkit keygen --kid review-2026`,
	Args: cobra.NoArgs,
	RunE: runKeygen,
}

func runKeygen(cmd *cobra.Command, _ []string) error {
	pair, err := keygen.Generate(keygenKid)
	if err != nil {
		return err
	}

	privateIndented, err := json.MarshalIndent(pair.Private, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding private JWK")
	}
	privateJSON, err := pair.PrivateJSON()
	if err != nil {
		return err
	}
	publicJSON, err := pair.PublicJSON()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Private JWK:")
	fmt.Fprintln(w, string(privateIndented))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Public JWK:")
	fmt.Fprintln(w, publicJSON)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add this to your environment:")
	fmt.Fprintf(w, "export SKILLKIT_REVIEW_KEY='%s'\n", privateJSON)

	return nil
}
