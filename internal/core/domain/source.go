package domain

import "fmt"

// SourceApp identifies the messaging app a user exported from. It is a
// declared label, not a detected one: detection of the concrete export
// dialect happens separately in the ingest package.
type SourceApp string

// Supported source apps.
const (
	SourceWhatsApp  SourceApp = "whatsapp"
	SourceIMessage  SourceApp = "imessage"
	SourceTelegram  SourceApp = "telegram"
	SourceInstagram SourceApp = "instagram"
	SourceMessenger SourceApp = "messenger"
	SourceSnapchat  SourceApp = "snapchat"
)

// ParseSourceApp validates a raw source-app label.
func ParseSourceApp(s string) (SourceApp, error) {
	switch SourceApp(s) {
	case SourceWhatsApp, SourceIMessage, SourceTelegram, SourceInstagram, SourceMessenger, SourceSnapchat:
		return SourceApp(s), nil
	default:
		return "", fmt.Errorf("unknown source app %q", s)
	}
}

// Format is the concrete export dialect detected for an upload. The set is
// closed: every parse either yields one of these tags or fails.
type Format string

// Detected export formats.
const (
	FormatWhatsAppTxt      Format = "whatsapp_txt"
	FormatTelegramJSON     Format = "telegram_json"
	FormatTelegramHTML     Format = "telegram_html"
	FormatMetaMessagesJSON Format = "meta_messages_json"
	FormatSnapchatJSON     Format = "snapchat_json"
	FormatIMessageCSV      Format = "imessage_csv"
)
