package commands

import (
	"github.com/spf13/cobra"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Normalize an export file into canonical messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		messages, report, err := parseFile(args[0])
		if err != nil {
			return err
		}

		return outputJSON(struct {
			Messages []domain.Message   `json:"messages"`
			Report   domain.ParseReport `json:"report"`
		}{Messages: messages, Report: report})
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
