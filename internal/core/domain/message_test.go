package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMessageBoundsSender(t *testing.T) {
	long := strings.Repeat("x", 500)

	m := NewMessage(nil, "  "+long+"  ", "body", 7)

	require.Len(t, []rune(m.Sender), maxSenderRunes)
	require.Equal(t, 7, m.SourceOrdinal)
	require.NotEmpty(t, m.ID)
	require.Nil(t, m.Timestamp)
}

func TestNewMessageIDsUniqueWithinParse(t *testing.T) {
	a := NewMessage(nil, "Asha", "one", 0)
	b := NewMessage(nil, "Asha", "one", 1)

	require.NotEqual(t, a.ID, b.ID)
}

func TestParseSourceApp(t *testing.T) {
	for _, valid := range []string{"whatsapp", "imessage", "telegram", "instagram", "messenger", "snapchat"} {
		app, err := ParseSourceApp(valid)

		require.NoError(t, err)
		require.Equal(t, SourceApp(valid), app)
	}

	_, err := ParseSourceApp("fax")
	require.Error(t, err)
}
