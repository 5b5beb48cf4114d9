package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	cerrors "github.com/chatlens-app/chatlens/internal/core/errors"
)

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

func isZipArchive(fileName string, data []byte) bool {
	return bytes.HasPrefix(data, zipMagic) || strings.HasSuffix(strings.ToLower(fileName), ".zip")
}

// threadCandidate is one conversation extracted from an archive, keyed by the
// directory that grouped its files.
type threadCandidate struct {
	path   string
	result decodeResult
}

// selectThread picks the candidate with the greatest message count. Ties are
// broken by encounter order: the first-seen candidate wins. The function is
// pure so selection policy stays testable without real archive bytes.
func selectThread(candidates []threadCandidate) (threadCandidate, bool) {
	best := -1

	for i, c := range candidates {
		if best < 0 || len(c.result.messages) > len(candidates[best].result.messages) {
			best = i
		}
	}

	if best < 0 || len(candidates[best].result.messages) == 0 {
		return threadCandidate{}, false
	}

	return candidates[best], true
}

// parseArchive enumerates a ZIP container, decodes every candidate entry with
// the app's dialect decoder, groups results by thread directory and keeps the
// best thread.
func (p *Parser) parseArchive(app domain.SourceApp, data []byte) ([]domain.Message, domain.ParseReport) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, failedReport("", fmt.Sprintf("%v: %v", cerrors.ErrUnreadableArchive, err))
	}

	format, decode, exts := archiveDecoderFor(app)
	if decode == nil {
		return nil, failedReport("", fmt.Sprintf("no archive convention for %s: %v", app, cerrors.ErrUnknownFormat))
	}

	var (
		dirOrder []string
		byDir    = map[string]*decodeResult{}
		warnings []string
	)

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || !matchesExt(entry.Name, exts) || strings.Contains(entry.Name, "__MACOSX") {
			continue
		}

		raw, err := readZipEntry(entry)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", entry.Name, err))
			continue
		}

		res, err := decode(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", entry.Name, err))
			continue
		}

		dir := path.Dir(entry.Name)

		agg, ok := byDir[dir]
		if !ok {
			agg = &decodeResult{}
			byDir[dir] = agg
			dirOrder = append(dirOrder, dir)
		}

		agg.messages = append(agg.messages, res.messages...)
		agg.ignored += res.ignored
		agg.warnings = append(agg.warnings, res.warnings...)
	}

	candidates := make([]threadCandidate, 0, len(dirOrder))
	for _, dir := range dirOrder {
		candidates = append(candidates, threadCandidate{path: dir, result: *byDir[dir]})
	}

	best, ok := selectThread(candidates)
	if !ok {
		parsesTotal.WithLabelValues(string(format), statusFailed).Inc()

		return nil, failedReport(format, fmt.Sprintf("archive yielded no messages: %v", cerrors.ErrNoMessages))
	}

	p.log.Debug().
		Str("thread", best.path).
		Int("candidates", len(candidates)).
		Int("messages", len(best.result.messages)).
		Msg("selected archive thread")

	// Ordinals were assigned per entry; renumber across the merged thread.
	messages := best.result.messages
	for i := range messages {
		messages[i].SourceOrdinal = i
	}

	warnings = append(warnings, best.result.warnings...)
	warnings = append(warnings, fmt.Sprintf("Auto-selected thread %s", best.path))

	parsesTotal.WithLabelValues(string(format), statusOK).Inc()
	messagesTotal.WithLabelValues(string(format)).Add(float64(len(messages)))

	return messages, domain.ParseReport{
		DetectedFormat: format,
		IgnoredCount:   best.result.ignored,
		Warnings:       warnings,
		SelectedThread: best.path,
	}
}

// archiveDecoderFor maps an app to the decoder and file extensions used for
// entries inside its archive exports.
func archiveDecoderFor(app domain.SourceApp) (domain.Format, decodeFunc, []string) {
	switch app {
	case domain.SourceInstagram, domain.SourceMessenger:
		return domain.FormatMetaMessagesJSON, decodeMeta, []string{".json"}
	case domain.SourceTelegram:
		return domain.FormatTelegramJSON, decodeTelegramJSON, []string{".json"}
	case domain.SourceSnapchat:
		return domain.FormatSnapchatJSON, decodeSnapchat, []string{".json"}
	case domain.SourceWhatsApp:
		return domain.FormatWhatsAppTxt, decodeWhatsApp, []string{".txt"}
	case domain.SourceIMessage:
		return domain.FormatIMessageCSV, decodeIMessageCSV, []string{".csv"}
	default:
		return "", nil, nil
	}
}

func matchesExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

func readZipEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry: %w", err)
	}

	return raw, nil
}
