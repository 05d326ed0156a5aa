// Command sce is a cobra-based CLI exposing the slicing/inlining engine as
// `sce slice`, `sce inline`, and `sce mcp`.
//
// Grounded on termfx-morfx's cmd/morfx/main.go for the overall shape (parse
// flags, build a request, run it, print the result as text or JSON) and on
// original_source/slicer/src/main.rs for the request/response envelope the
// `sce rpc` subcommand's stdin/stdout JSON mode mirrors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/sce/internal/auditlog"
	"github.com/oxhq/sce/internal/engine"
	"github.com/oxhq/sce/internal/langconfig/languages"
	"github.com/oxhq/sce/internal/langguess"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sce",
		Short: "Syntactic slicing and inlining engine",
	}

	root.AddCommand(newSliceCmd())
	root.AddCommand(newInlineCmd())
	root.AddCommand(newMCPCmd())
	root.AddCommand(newRPCCmd())
	root.AddCommand(newScanCmd())
	return root
}

// newEngine builds an Engine over every built-in language, erroring loudly
// (with RegisterAll's multierr aggregate of every failing language wrapped
// inside) if any language config fails to compile.
func newEngine() (*engine.Engine, error) {
	reg, err := languages.Registry()
	if err != nil {
		return nil, fmt.Errorf("building language registry: %w", err)
	}
	return engine.New(reg, langguess.FromRegistry(reg)), nil
}

// openAuditLog opens dsn if non-empty, returning a nil *auditlog.Log
// (auditing disabled) otherwise.
func openAuditLog(dsn string) (*auditlog.Log, error) {
	if dsn == "" {
		return nil, nil
	}
	return auditlog.Open(dsn)
}
