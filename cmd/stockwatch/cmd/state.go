package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"stockwatch/internal/state"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the tracked products and their last-known status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := state.Load(Config.StateFile)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no tracked products yet")
			return nil
		}

		names := make([]string, 0, len(records))
		for name := range records {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			record := records[name]
			line := fmt.Sprintf("%-30s %-14s checked %s", name, record.Status,
				record.LastChecked.Format("2006-01-02 15:04:05"))
			if record.Price != "" {
				line += fmt.Sprintf("  price %s", record.Price)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
