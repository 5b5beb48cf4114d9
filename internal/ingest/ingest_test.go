package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

func TestParseFailureSemantics(t *testing.T) {
	parser := New(nil)

	tests := []struct {
		name     string
		app      domain.SourceApp
		fileName string
		data     string
	}{
		{name: "empty input", app: domain.SourceWhatsApp, fileName: "chat.txt", data: ""},
		{name: "no dialect match", app: domain.SourceTelegram, fileName: "notes.docx", data: "binary-ish"},
		{name: "malformed json", app: domain.SourceInstagram, fileName: "message_1.json", data: "{not json"},
		{name: "json with no messages", app: domain.SourceInstagram, fileName: "message_1.json", data: `{"messages": []}`},
		{name: "transcript with only system lines", app: domain.SourceWhatsApp, fileName: "chat.txt", data: "25/12/21, 22:29 - Messages and calls are end-to-end encrypted.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, report := parser.Parse(tt.app, tt.fileName, []byte(tt.data))

			require.True(t, report.Failed())
			require.Equal(t, domain.ParseErrParseFailed, report.Error)
			require.Empty(t, messages)
			require.NotEmpty(t, report.Warnings, "failure must carry a diagnostic")
		})
	}
}

func TestDecoderForSniffing(t *testing.T) {
	parser := New(nil)

	tests := []struct {
		name     string
		app      domain.SourceApp
		fileName string
		data     string
		want     domain.Format
	}{
		{name: "telegram json by extension", app: domain.SourceTelegram, fileName: "result.json", data: "{}", want: domain.FormatTelegramJSON},
		{name: "telegram html by leading bytes", app: domain.SourceTelegram, fileName: "export", data: "<html>", want: domain.FormatTelegramHTML},
		{name: "telegram json by leading byte", app: domain.SourceTelegram, fileName: "export", data: "{", want: domain.FormatTelegramJSON},
		{name: "whatsapp txt", app: domain.SourceWhatsApp, fileName: "chat.txt", data: "hello", want: domain.FormatWhatsAppTxt},
		{name: "imessage csv", app: domain.SourceIMessage, fileName: "out.csv", data: "a,b", want: domain.FormatIMessageCSV},
		{name: "snapchat json", app: domain.SourceSnapchat, fileName: "chat_history.json", data: "[]", want: domain.FormatSnapchatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, decode := parser.decoderFor(tt.app, tt.fileName, []byte(tt.data))

			require.NotNil(t, decode)
			require.Equal(t, tt.want, format)
		})
	}
}

func TestSourceOrdinalsStrictlyIncreasing(t *testing.T) {
	parser := New(nil)

	messages, report := parser.Parse(domain.SourceWhatsApp, "chat.txt", []byte(whatsAppSample))

	require.False(t, report.Failed())

	for i := 1; i < len(messages); i++ {
		require.Greater(t, messages[i].SourceOrdinal, messages[i-1].SourceOrdinal)
	}
}
