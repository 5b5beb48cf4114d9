package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	cerrors "github.com/chatlens-app/chatlens/internal/core/errors"
)

const imessageSample = `datetime,contact,body
2021-01-05 14:30:00,Asha,Hello
2021-01-05 14:31:00,Rohan,"Hi there, how are you?"
2021-01-05 14:32:00,Asha,Bye
`

func TestParseIMessageCSV(t *testing.T) {
	parser := New(nil)

	messages, report := parser.Parse(domain.SourceIMessage, "export.csv", []byte(imessageSample))

	require.False(t, report.Failed())
	require.Equal(t, domain.FormatIMessageCSV, report.DetectedFormat)
	require.Len(t, messages, 3)

	require.Equal(t, "Asha", messages[0].Sender)
	require.Equal(t, "Hello", messages[0].Text)
	require.Equal(t, "Hi there, how are you?", messages[1].Text)
	require.NotNil(t, messages[0].Timestamp)
}

func TestIMessageHeaderSynonyms(t *testing.T) {
	sample := "timestamp,from,message\n2021-01-05 14:30:00,Asha,Hello\n"

	res, err := decodeIMessageCSV([]byte(sample))

	require.NoError(t, err)
	require.Len(t, res.messages, 1)
	require.Equal(t, "Asha", res.messages[0].Sender)
}

func TestIMessageUnparseableDateKeepsMessage(t *testing.T) {
	sample := "datetime,contact,body\nnot-a-date,Asha,still counts\n"

	res, err := decodeIMessageCSV([]byte(sample))

	require.NoError(t, err)
	require.Len(t, res.messages, 1)
	require.Nil(t, res.messages[0].Timestamp)
}

func TestIMessageMissingHeader(t *testing.T) {
	_, err := decodeIMessageCSV([]byte("a,b,c\n1,2,3\n"))

	require.ErrorIs(t, err, cerrors.ErrNoHeader)
}
