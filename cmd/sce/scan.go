package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxhq/sce/internal/filescan"
	"github.com/oxhq/sce/internal/langconfig/languages"
	"github.com/oxhq/sce/internal/langguess"
)

// newScanCmd lists every file under a directory with its guessed
// language, for piping into a batch of slice/inline calls.
func newScanCmd() *cobra.Command {
	var (
		include  []string
		exclude  []string
		maxFiles int
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "List files under a directory with their guessed language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := languages.Registry()
			if err != nil {
				return fmt.Errorf("building language registry: %w", err)
			}
			scanner := filescan.New(langguess.FromRegistry(reg))

			scope := filescan.Scope{
				Root:     args[0],
				Include:  include,
				Exclude:  exclude,
				MaxFiles: maxFiles,
				MaxDepth: maxDepth,
			}

			out := cmd.OutOrStdout()
			for result := range scanner.Scan(cmd.Context(), scope) {
				if result.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", result.Path, result.Err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", result.Path, result.Language)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "Glob patterns a file must match at least one of (default: all)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Glob patterns that exclude a file or directory")
	cmd.Flags().IntVar(&maxFiles, "max-files", 0, "Stop after this many files (0 = unlimited)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth to descend (0 = unlimited)")
	return cmd
}
