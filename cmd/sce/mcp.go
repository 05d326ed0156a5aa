package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/sce/internal/auditlog"
	mcpserver "github.com/oxhq/sce/mcp"
)

func newMCPCmd() *cobra.Command {
	var auditDSN string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve slice/inline as MCP tools over a JSON-RPC 2.0 stdio transport",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			var log *auditlog.Log
			if auditDSN != "" {
				log, err = auditlog.Open(auditDSN)
				if err != nil {
					return err
				}
				defer log.Close()
			}

			handlers := mcpserver.NewHandlers(eng, log)
			server := mcpserver.NewStdioServer(handlers, os.Stdin, os.Stdout)
			return server.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&auditDSN, "audit-db", "", "sqlite path to record every request (disabled if empty)")
	return cmd
}
