package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomanize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii passthrough", "Rampur Block", "Rampur Block"},
		{"trims whitespace", "  Rampur  ", "Rampur"},
		{"empty string", "", ""},
		{"whitespace only", "   \t\n ", ""},
		{"devanagari", "उत्तर प्रदेश", "uttr prdesh"},
		{"devanagari with spaces", "  ग्राम पंचायत  ", "graam pNcaayt"},
		{"latin diacritics", "Chhāttīsgarh", "Chhattisgarh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Romanize(tt.input))
		})
	}
}

func TestRomanize_Deterministic(t *testing.T) {
	input := "जिला पंचायत रामपुर"
	first := Romanize(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Romanize(input))
	}
}

func TestRomanize_ASCIIOutput(t *testing.T) {
	out := Romanize("पंचायत समिति, ज़िला १२३")
	for _, r := range out {
		assert.Less(t, r, rune(128), "output must be pure ASCII")
	}
}
