package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

func textMessages(texts ...string) []domain.Message {
	messages := make([]domain.Message, len(texts))
	for i, text := range texts {
		messages[i] = domain.NewMessage(nil, "Asha", text, i)
	}

	return messages
}

func TestDetectLanguages(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			name:  "plain english",
			texts: []string{"Good morning, how was your day?", "It was lovely, thanks for asking"},
			want:  []string{langEnglish},
		},
		{
			name:  "devanagari hindi",
			texts: []string{"नमस्ते आप कैसे हैं", "मैं ठीक हूँ धन्यवाद"},
			want:  []string{langHindi},
		},
		{
			name:  "romanized hinglish",
			texts: []string{"yaar kya scene hai", "nahi bhai, office mein hu", "acha theek hai milte hai"},
			want:  []string{langHinglish, langHindi, langEnglish},
		},
		{
			name:  "numbers and emoji only",
			texts: []string{"123 456", "!!!"},
			want:  []string{langUnknown},
		},
		{
			name:  "empty input",
			texts: nil,
			want:  []string{langUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectLanguages(textMessages(tt.texts...))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCountScripts(t *testing.T) {
	latin, devanagari, total := countScripts("abc नमस्ते 123")

	require.Equal(t, 3, latin)
	require.Positive(t, devanagari)
	require.Equal(t, latin+devanagari, total)
}
