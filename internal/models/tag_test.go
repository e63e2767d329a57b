package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagScope(t *testing.T) {
	tests := []struct {
		scope   TagScope
		valid   bool
		invoice bool
		folder  bool
	}{
		{TagScopeInvoice, true, true, false},
		{TagScopeFolder, true, false, true},
		{TagScopeBoth, true, true, true},
		{TagScope("document"), false, false, false},
		{TagScope(""), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.scope.Valid())
			assert.Equal(t, tt.invoice, tt.scope.AppliesToInvoice())
			assert.Equal(t, tt.folder, tt.scope.AppliesToFolder())
		})
	}
}

func TestInvoiceStatusValid(t *testing.T) {
	for _, s := range []InvoiceStatus{
		StatusDraft, StatusToSend, StatusSent, StatusViewed,
		StatusPartialPayment, StatusPaid, StatusOverdue,
		StatusCancelled, StatusRefunded,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, InvoiceStatus("draft").Valid(), "statuses are case sensitive")
	assert.False(t, InvoiceStatus("").Valid())
}

func TestBulkResultRecord(t *testing.T) {
	var r BulkResult
	r.Record(1, nil)
	r.Record(2, errors.New("invoice is locked"))
	r.Record(3, nil)

	assert.Equal(t, 2, r.Succeeded)
	assert.Equal(t, 1, r.Failed)
	if assert.Len(t, r.Errors, 1) {
		assert.Equal(t, int64(2), r.Errors[0].ID)
		assert.Equal(t, "invoice is locked", r.Errors[0].Reason)
	}
}
