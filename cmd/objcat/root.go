package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loosegit/objcat/internal/codec/zlibcodec"
	"github.com/loosegit/objcat/internal/store/diskstore"
)

var (
	// Global flags.
	gitDir     string
	decodeFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "objcat",
	Short: "Extract loose version-control objects into readable text",
	Long: `objcat reads a compressed loose object from a repository's object
store, inflates it, and decodes the payload as UTF-8 text. Invalid byte
sequences are replaced (or dropped) rather than failing, since object
payloads can mix text with binary metadata.

Examples:
  # Save a commit object's content to a file
  objcat extract 2eec9880e2f26fd459705a3b54263ba7e52dd8f1 -o commit_content.txt

  # Print an object to stdout
  objcat show 2eec9880e2f26fd459705a3b54263ba7e52dd8f1

  # Check every loose object inflates cleanly
  objcat verify`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&gitDir, "git-dir", "C", ".git", "repository directory containing the object store")
	rootCmd.PersistentFlags().StringVar(&decodeFlag, "decode", "replace", "invalid-UTF-8 handling: replace or drop")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// openRepoStore opens the loose-object store under --git-dir.
func openRepoStore() (*diskstore.Store, error) {
	return diskstore.New(gitDir, zlibcodec.New())
}

// buildLogger returns a logger honoring --verbose.
func buildLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
