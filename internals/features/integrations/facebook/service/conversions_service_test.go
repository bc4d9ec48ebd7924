package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIdentifier(t *testing.T) {
	// normalisasi dulu: trim + lowercase, baru SHA-256
	assert.Equal(t, HashIdentifier("user@mail.com"), HashIdentifier("  USER@MAIL.COM  "))
	assert.Len(t, HashIdentifier("user@mail.com"), 64)
	assert.Equal(t, "", HashIdentifier("   "))
	assert.NotEqual(t, HashIdentifier("a@mail.com"), HashIdentifier("b@mail.com"))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "6281234567890"},
		{"0812-3456-7890", "6281234567890"},
		{"+62 812 3456 7890", "6281234567890"},
		{"62812345678", "62812345678"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}
