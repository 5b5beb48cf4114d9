package commands

import (
	"github.com/spf13/cobra"

	"github.com/chatlens-app/chatlens/internal/analytics"
	"github.com/chatlens-app/chatlens/internal/core/domain"
)

var (
	participantsFlag []string
	presetFlag       string
	startFlag        string
	endFlag          string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Parse an export file and compute conversation metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		messages, report, err := parseFile(args[0])
		if err != nil {
			return err
		}

		payload := analytics.Analyze(messages, analytics.Options{
			Participants: participantsFlag,
			DateRange:    dateRangeFromFlags(),
		})

		return outputJSON(struct {
			Report  domain.ParseReport `json:"report"`
			Metrics analytics.Payload  `json:"metrics"`
		}{Report: report, Metrics: payload})
	},
}

func dateRangeFromFlags() *analytics.DateRange {
	if presetFlag == "" && startFlag == "" && endFlag == "" {
		return nil
	}

	return &analytics.DateRange{Start: startFlag, End: endFlag, Preset: presetFlag}
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&participantsFlag, "participants", nil, "Manual participant names (round-robin for unattributed messages)")
	analyzeCmd.Flags().StringVar(&presetFlag, "preset", "", `Coarse duration preset ("1-3 days", "1-3 weeks", "1 month")`)
	analyzeCmd.Flags().StringVar(&startFlag, "start", "", "Manual range start (any common date format)")
	analyzeCmd.Flags().StringVar(&endFlag, "end", "", "Manual range end (any common date format)")

	rootCmd.AddCommand(analyzeCmd)
}
