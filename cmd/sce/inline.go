package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/sce/internal/auditlog"
	"github.com/oxhq/sce/internal/difftext"
	"github.com/oxhq/sce/internal/diskapply"
	"github.com/oxhq/sce/internal/engine"
	"github.com/oxhq/sce/internal/point"
)

func newInlineCmd() *cobra.Command {
	var (
		language    string
		row, column int

		calleeFile         string
		calleeLanguage     string
		calleeRow          int
		calleeColumn       int

		write    bool
		showDiff bool
		auditDSN string
	)

	cmd := &cobra.Command{
		Use:   "inline <file>",
		Short: "Inline the function called at a point into its callsite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("reading %s: %w", filename, err)
			}
			if calleeFile == "" {
				return fmt.Errorf("--callee-file is required")
			}
			calleeContent, err := os.ReadFile(calleeFile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", calleeFile, err)
			}

			eng, err := newEngine()
			if err != nil {
				return err
			}

			src := engine.Source{
				Filename: filename,
				Language: language,
				Content:  content,
				Point:    point.Point{Row: row, Column: column},
			}
			callee := engine.Source{
				Filename: calleeFile,
				Language: calleeLanguage,
				Content:  calleeContent,
				Point:    point.Point{Row: calleeRow, Column: calleeColumn},
			}

			result, inlineErr := eng.Inline(cmd.Context(), src, callee)
			recordInlineAudit(auditDSN, src, inlineErr)
			if inlineErr != nil {
				return inlineErr
			}
			if result.MultipleReturnsUnhandled {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: callee has multiple return statements; callsite left unrewritten")
			}

			if showDiff {
				fmt.Fprint(cmd.OutOrStdout(), difftext.Unified(filename, string(content), result.Content, 3))
				if !write {
					return nil
				}
			}

			if write {
				return diskapply.Apply(filename, result.Content, diskapply.DefaultConfig())
			}
			fmt.Print(result.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "lang", "l", "", "Caller language tag; guessed if omitted")
	cmd.Flags().IntVar(&row, "row", 0, "0-indexed row of the call to inline")
	cmd.Flags().IntVar(&column, "column", 0, "0-indexed column of the call to inline")
	cmd.Flags().StringVar(&calleeFile, "callee-file", "", "File containing the callee's definition (required)")
	cmd.Flags().StringVar(&calleeLanguage, "callee-lang", "", "Callee language tag; guessed if omitted")
	cmd.Flags().IntVar(&calleeRow, "callee-row", 0, "0-indexed row of the callee definition")
	cmd.Flags().IntVar(&calleeColumn, "callee-column", 0, "0-indexed column of the callee definition")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Apply the inline to the caller file in place instead of printing it")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff of the inline instead of (or alongside, with --write) the full rewritten source")
	cmd.Flags().StringVar(&auditDSN, "audit-db", "", "sqlite path to record this request (disabled if empty)")
	return cmd
}

func recordInlineAudit(dsn string, src engine.Source, inlineErr error) {
	if dsn == "" {
		return
	}
	log, err := openAuditLog(dsn)
	if err != nil {
		return
	}
	defer log.Close()

	detail := ""
	if inlineErr != nil {
		detail = inlineErr.Error()
	}
	_ = log.Record(auditlog.Operation{
		Kind:     "inline",
		Language: src.Language,
		Filename: src.Filename,
		Success:  inlineErr == nil,
		Detail:   detail,
	})
}
