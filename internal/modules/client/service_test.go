package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"mobile digits", "11987654321", "(11) 98765-4321"},
		{"mobile formatted already", "(11) 98765-4321", "(11) 98765-4321"},
		{"landline", "1131234567", "(11) 3123-4567"},
		{"with punctuation", "11 9.8765-4321", "(11) 98765-4321"},
		{"too short passes through", "12345", "12345"},
		{"empty", "", ""},
		{"whitespace trimmed", "  12345  ", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPhone(tc.in))
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5511987654321", Digits("+55 (11) 98765-4321"))
	assert.Equal(t, "", Digits("no numbers here"))
}
