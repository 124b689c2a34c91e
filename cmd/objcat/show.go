package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show OBJECT",
	Short: "Print an object's content to stdout",
	Long: `Show reads the given loose object, inflates it, and prints the
decoded text to stdout. With --raw the inflated bytes are written as-is,
with no lossy decoding.

Examples:
  objcat show 2eec9880e2f26fd459705a3b54263ba7e52dd8f1
  objcat show --raw 2eec9880e2f26fd459705a3b54263ba7e52dd8f1 > object.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showRaw bool

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "write inflated bytes without decoding")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if showRaw {
		return showRawBytes(ctx, cmd, args[0])
	}

	client, err := newExtractClient()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := extract(ctx, client, args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), res.Text)
	return nil
}

func showRawBytes(ctx context.Context, cmd *cobra.Command, arg string) error {
	st, err := openRepoStore()
	if err != nil {
		return fmt.Errorf("opening repository %q: %w", gitDir, err)
	}
	defer st.Close()

	var raw []byte
	if isFileArg(arg) {
		raw, err = st.ReadFile(ctx, arg)
	} else {
		raw, err = st.ReadObject(ctx, arg)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(raw)
	return err
}
