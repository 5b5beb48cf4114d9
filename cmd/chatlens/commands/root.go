// Package commands wires the chatlens CLI. The CLI is a thin driver over the
// ingest and analytics packages; it owns no parsing or metric logic of its
// own.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	"github.com/chatlens-app/chatlens/internal/ingest"
	"github.com/chatlens-app/chatlens/internal/platform/config"
)

var (
	appFlag string

	cfg    *config.Config
	logger *zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chatlens",
	Short: "Parse chat exports and compute conversation metrics",
	Long: `chatlens ingests exported chat-history files (WhatsApp, iMessage,
Telegram, Instagram, Messenger, Snapchat) and turns them into a canonical
message stream plus derived conversation metrics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the loaded configuration.
func Execute(c *config.Config, l *zerolog.Logger) error {
	cfg = c
	logger = l

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appFlag, "app", "", "Source app (whatsapp, imessage, telegram, instagram, messenger, snapchat)")
}

// parseFile runs the normalizer against one export file.
func parseFile(path string) ([]domain.Message, domain.ParseReport, error) {
	label := appFlag
	if label == "" {
		label = cfg.DefaultSourceApp
	}

	app, err := domain.ParseSourceApp(label)
	if err != nil {
		return nil, domain.ParseReport{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ParseReport{}, fmt.Errorf("reading %s: %w", path, err)
	}

	messages, report := ingest.New(logger).Parse(app, path, data)

	return messages, report, nil
}

// outputJSON pretty-prints a result to stdout.
func outputJSON(data interface{}) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	fmt.Println(string(out))

	return nil
}
