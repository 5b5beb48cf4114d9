package domain

// ParseError is the failure tag carried in a ParseReport. The normalizer
// never raises for malformed content; callers branch on this tag instead.
type ParseError string

// ParseErrParseFailed means no messages could be extracted: an unreadable
// container, an unrecognized dialect, or a decode that yielded nothing.
const ParseErrParseFailed ParseError = "parse_failed"

// ParseReport is the structured diagnostic record accompanying one parse
// attempt. It is created once per call and not mutated after return.
type ParseReport struct {
	// DetectedFormat is the dialect the bytes were decoded as. Empty when
	// no dialect matched.
	DetectedFormat Format `json:"detected_format,omitempty"`

	// IgnoredCount counts units that were skipped without becoming
	// messages: system lines, orphan continuations, undecodable rows.
	IgnoredCount int `json:"ignored_count"`

	// Warnings are non-fatal diagnostics in emission order.
	Warnings []string `json:"warnings,omitempty"`

	// SelectedThread identifies the archive entry path that was chosen
	// when the upload contained several candidate threads.
	SelectedThread string `json:"selected_thread,omitempty"`

	// Error, when set, means the accompanying message list is empty and
	// the parse produced nothing usable.
	Error ParseError `json:"error,omitempty"`
}

// Failed reports whether the parse produced nothing usable.
func (r ParseReport) Failed() bool {
	return r.Error != ""
}
