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
	"github.com/oxhq/sce/internal/ranges"
	"github.com/oxhq/sce/internal/slicer"
)

func newSliceCmd() *cobra.Command {
	var (
		language  string
		direction string
		row       int
		column    int
		write     bool
		showDiff  bool
		auditDSN  string
	)

	cmd := &cobra.Command{
		Use:   "slice <file>",
		Short: "Compute the backward or forward variable slice at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("reading %s: %w", filename, err)
			}

			eng, err := newEngine()
			if err != nil {
				return err
			}

			dir := slicer.Backward
			if direction == "forward" {
				dir = slicer.Forward
			} else if direction != "" && direction != "backward" {
				return fmt.Errorf("invalid --direction %q (want backward or forward)", direction)
			}

			src := engine.Source{
				Filename: filename,
				Language: language,
				Content:  content,
				Point:    point.Point{Row: row, Column: column},
			}

			rngs, sliceErr := eng.Slice(cmd.Context(), src, dir)
			recordSliceAudit(auditDSN, src, direction, sliceErr)
			if sliceErr != nil {
				return sliceErr
			}

			reduced, anchor := ranges.Apply(string(content), rngs, src.Point)
			fmt.Fprintf(cmd.ErrOrStderr(), "anchor: row=%d column=%d\n", anchor.Row, anchor.Column)

			if showDiff {
				fmt.Fprint(cmd.OutOrStdout(), difftext.Unified(filename, string(content), reduced, 3))
				if !write {
					return nil
				}
			}

			if write {
				return diskapply.Apply(filename, reduced, diskapply.DefaultConfig())
			}
			fmt.Fprint(cmd.OutOrStdout(), reduced)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "lang", "l", "", "Language tag; guessed from the filename/content if omitted")
	cmd.Flags().StringVarP(&direction, "direction", "d", "backward", "backward or forward")
	cmd.Flags().IntVar(&row, "row", 0, "0-indexed row of the target point")
	cmd.Flags().IntVar(&column, "column", 0, "0-indexed column of the target point")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Apply the slice to the file in place instead of printing it")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff of the slice instead of (or alongside, with --write) the full reduced source")
	cmd.Flags().StringVar(&auditDSN, "audit-db", "", "sqlite path to record this request (disabled if empty)")
	return cmd
}

func recordSliceAudit(dsn string, src engine.Source, direction string, sliceErr error) {
	if dsn == "" {
		return
	}
	log, err := openAuditLog(dsn)
	if err != nil {
		return
	}
	defer log.Close()

	detail := ""
	if sliceErr != nil {
		detail = sliceErr.Error()
	}
	_ = log.Record(auditlog.Operation{
		Kind:      "slice",
		Language:  src.Language,
		Filename:  src.Filename,
		Direction: direction,
		Success:   sliceErr == nil,
		Detail:    detail,
	})
}
