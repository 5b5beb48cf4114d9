// Package ingest turns exported chat-history files into canonical messages.
//
// Each supported app ships exports in its own dialect (plain-text transcripts,
// two JSON shapes, an HTML export, a CSV export, and ZIP archives wrapping any
// of these). One decoder per dialect produces the same canonical message
// shape; the dispatcher here picks the decoder from the declared source app
// plus content sniffing.
//
// Parse never raises for malformed content. All data-quality problems are
// folded into the returned ParseReport so callers can surface a "could not
// parse" outcome without exception-based control flow.
package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	cerrors "github.com/chatlens-app/chatlens/internal/core/errors"
)

// decodeResult is what every dialect decoder yields before the dispatcher
// wraps it into a ParseReport.
type decodeResult struct {
	messages []domain.Message
	ignored  int
	warnings []string
}

type decodeFunc func(data []byte) (decodeResult, error)

// Parser is the format detector and normalizer. It holds no per-call state;
// concurrent Parse calls are safe.
type Parser struct {
	log zerolog.Logger
}

// New creates a Parser. A nil logger disables diagnostics.
func New(logger *zerolog.Logger) *Parser {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Parser{log: *logger}
}

// Parse decodes raw export bytes into canonical messages. It never returns an
// error: failure is signaled through report.Error, in which case the message
// list is empty.
func (p *Parser) Parse(app domain.SourceApp, fileName string, data []byte) ([]domain.Message, domain.ParseReport) {
	if isZipArchive(fileName, data) {
		return p.parseArchive(app, data)
	}

	format, decode := p.decoderFor(app, fileName, data)
	if decode == nil {
		p.log.Debug().Str("app", string(app)).Str("file", fileName).Msg("no dialect matched")

		return nil, failedReport("", fmt.Sprintf("unrecognized export format for %s: %v", app, cerrors.ErrUnknownFormat))
	}

	res, err := decode(data)
	if err != nil {
		parsesTotal.WithLabelValues(string(format), statusFailed).Inc()

		return nil, failedReport(format, fmt.Sprintf("decoding as %s: %v", format, err))
	}

	if len(res.messages) == 0 {
		parsesTotal.WithLabelValues(string(format), statusFailed).Inc()

		return nil, failedReport(format, fmt.Sprintf("decoding as %s: %v", format, cerrors.ErrNoMessages))
	}

	parsesTotal.WithLabelValues(string(format), statusOK).Inc()
	messagesTotal.WithLabelValues(string(format)).Add(float64(len(res.messages)))

	p.log.Debug().
		Str("format", string(format)).
		Int("messages", len(res.messages)).
		Int("ignored", res.ignored).
		Msg("parsed export")

	return res.messages, domain.ParseReport{
		DetectedFormat: format,
		IgnoredCount:   res.ignored,
		Warnings:       res.warnings,
	}
}

// decoderFor selects a dialect decoder from the declared app plus content
// sniffing (extension, leading bytes). A nil decoder means nothing matched.
func (p *Parser) decoderFor(app domain.SourceApp, fileName string, data []byte) (domain.Format, decodeFunc) {
	ext := strings.ToLower(filepath.Ext(fileName))
	lead := leadingByte(data)

	switch app {
	case domain.SourceWhatsApp:
		if ext == "" || ext == ".txt" {
			return domain.FormatWhatsAppTxt, decodeWhatsApp
		}
	case domain.SourceTelegram:
		if ext == ".html" || ext == ".htm" || lead == '<' {
			return domain.FormatTelegramHTML, decodeTelegramHTML
		}

		if ext == ".json" || lead == '{' || lead == '[' {
			return domain.FormatTelegramJSON, decodeTelegramJSON
		}
	case domain.SourceInstagram, domain.SourceMessenger:
		if ext == ".json" || lead == '{' {
			return domain.FormatMetaMessagesJSON, decodeMeta
		}
	case domain.SourceSnapchat:
		if ext == ".json" || lead == '{' || lead == '[' {
			return domain.FormatSnapchatJSON, decodeSnapchat
		}
	case domain.SourceIMessage:
		if ext == "" || ext == ".csv" || ext == ".txt" {
			return domain.FormatIMessageCSV, decodeIMessageCSV
		}
	}

	return "", nil
}

// failedReport builds the uniform parse-failed report with one diagnostic.
func failedReport(format domain.Format, diag string) domain.ParseReport {
	return domain.ParseReport{
		DetectedFormat: format,
		Warnings:       []string{diag},
		Error:          domain.ParseErrParseFailed,
	}
}

// leadingByte returns the first non-whitespace byte of data, or 0.
func leadingByte(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}
