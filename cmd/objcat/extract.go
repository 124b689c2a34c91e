package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loosegit/objcat"
	"github.com/loosegit/objcat/internal/object"
)

var extractCmd = &cobra.Command{
	Use:   "extract OBJECT",
	Short: "Extract an object's content to a text file",
	Long: `Extract reads the given loose object, inflates it, decodes it as
UTF-8 text, and writes the text to the output file, replacing any previous
content. The write is synced before the command reports success.

OBJECT is either a 40-character hex object name resolved under --git-dir,
or a path to a compressed object file copied out of a repository.

Examples:
  objcat extract 2eec9880e2f26fd459705a3b54263ba7e52dd8f1
  objcat extract 2eec9880e2f26fd459705a3b54263ba7e52dd8f1 -o commit.txt
  objcat extract /tmp/2e/ec9880e2f26fd459705a3b54263ba7e52dd8f1 -o commit.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var outputPath string

func init() {
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "commit_content.txt", "destination text file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	client, err := newExtractClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	res, err := extractResult(ctx, client, args[0], outputPath)
	if err != nil {
		return err
	}

	if verbose && res.Lossy {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: payload contained invalid UTF-8")
	}
	fmt.Printf("Content saved to %s\n", outputPath)
	return nil
}

// newExtractClient builds a client from the persistent flags.
func newExtractClient() (*objcat.Client, error) {
	policy, err := objcat.ParseDecodePolicy(decodeFlag)
	if err != nil {
		return nil, err
	}

	repoOpt, err := objcat.WithRepository(gitDir)
	if err != nil {
		return nil, fmt.Errorf("opening repository %q: %w", gitDir, err)
	}

	return objcat.New(
		repoOpt,
		objcat.WithDecodePolicy(policy),
		objcat.WithLogger(buildLogger()),
	)
}

// extractResult dispatches on whether the argument names an object or a file.
func extractResult(ctx context.Context, client *objcat.Client, arg, dest string) (*objcat.Result, error) {
	if isFileArg(arg) {
		return client.ExtractPathToFile(ctx, arg, dest)
	}
	return client.ExtractToFile(ctx, arg, dest)
}

// extract is extractResult without the output file, for printing.
func extract(ctx context.Context, client *objcat.Client, arg string) (*objcat.Result, error) {
	if isFileArg(arg) {
		return client.ExtractPath(ctx, arg)
	}
	return client.Extract(ctx, arg)
}

// isFileArg reports whether arg should be treated as a file path rather
// than an object name. A bare argument that parses as a valid object ID is
// always resolved through the object store, even if a file of that name
// exists in the working directory.
func isFileArg(arg string) bool {
	if strings.ContainsAny(arg, `/\`) {
		return true
	}
	_, err := object.ParseID(arg)
	return err != nil
}
