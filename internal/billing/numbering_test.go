package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		prefix   string
		want     string
	}{
		{
			name:     "empty set with prefix",
			existing: nil,
			prefix:   "INV",
			want:     "INV-001",
		},
		{
			name:     "empty set without prefix",
			existing: nil,
			prefix:   "",
			want:     "001",
		},
		{
			name:     "last digit run wins, digit-free strings ignored",
			existing: []string{"INV-004", "INV-2024-009", "no-digits-here"},
			prefix:   "INV",
			want:     "INV-010",
		},
		{
			name:     "leading zeros are not octal",
			existing: []string{"INV-008"},
			prefix:   "INV",
			want:     "INV-009",
		},
		{
			name:     "pads to three digits",
			existing: []string{"7"},
			prefix:   "",
			want:     "008",
		},
		{
			name:     "does not truncate past three digits",
			existing: []string{"INV-0999"},
			prefix:   "INV",
			want:     "INV-1000",
		},
		{
			name:     "year prefix in number is skipped in favor of trailing run",
			existing: []string{"2024-INV-012", "2024-INV-003"},
			prefix:   "",
			want:     "013",
		},
		{
			name:     "only digit-free numbers behave like an empty set",
			existing: []string{"draft", "untitled"},
			prefix:   "INV",
			want:     "INV-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextInvoiceNumber(tt.existing, tt.prefix))
		})
	}
}
