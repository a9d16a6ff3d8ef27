package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/config"
)

func listCommittees(committees committee.Provider) string {
	var buf strings.Builder
	buf.WriteString("Available committees:\n")
	for _, code := range committees.Codes() {
		rec, _ := committees.Lookup(code)
		buf.WriteString(fmt.Sprintf("  %-6s %s (%d speakers, %d motions)\n",
			code, rec.DisplayName, len(rec.Speakers), len(rec.Motions)))
	}
	return buf.String()
}

func committeesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "committees",
		Short: "List the configured committees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				return fmt.Errorf("no config found in context")
			}
			committees, err := loadCommittees(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), listCommittees(committees))
			return nil
		},
	}
	return cmd
}
