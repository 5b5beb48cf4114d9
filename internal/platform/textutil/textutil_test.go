package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "punctuation stripped", text: "Hello, world! How's it going?", want: []string{"hello", "world", "how", "s", "it", "going"}},
		{name: "lowercased", text: "COFFEE Coffee coffee", want: []string{"coffee", "coffee", "coffee"}},
		{name: "devanagari preserved", text: "chai या coffee?", want: []string{"chai", "या", "coffee"}},
		{name: "empty", text: "  \n\t ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStripTags(t *testing.T) {
	require.Equal(t, "bold and plain", StripTags("<b>bold</b> and <i>plain</i>"))
	require.Equal(t, "a < b", StripTags("a &lt; b"))
	require.Equal(t, "no markup", StripTags("no markup"))
}

func TestRedact(t *testing.T) {
	require.Equal(t, "h**** w****", Redact("hello world"))
	require.Equal(t, "a", Redact("a"))
	require.Equal(t, "", Redact(""))
}

func TestCollapseSpaces(t *testing.T) {
	require.Equal(t, "a b c", CollapseSpaces("  a \n b\t\tc "))
}
