package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		wantID int64
		wantOK bool
	}{
		{"numeric", map[string]string{"id": "42"}, 42, true},
		{"zero rejected", map[string]string{"id": "0"}, 0, false},
		{"negative rejected", map[string]string{"id": "-3"}, -3, false},
		{"non numeric", map[string]string{"id": "abc"}, 0, false},
		{"missing", map[string]string{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/invoices/x", nil)
			r = mux.SetURLVars(r, tt.vars)
			id, ok := pathID(r)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestFolderScope(t *testing.T) {
	t.Run("absent means everything", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/invoices", nil)
		folderID, unfiled, ok := folderScope(r)
		require.True(t, ok)
		assert.Nil(t, folderID)
		assert.False(t, unfiled)
	})

	t.Run("unfiled", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/invoices?folder=unfiled", nil)
		folderID, unfiled, ok := folderScope(r)
		require.True(t, ok)
		assert.Nil(t, folderID)
		assert.True(t, unfiled)
	})

	t.Run("numeric id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/invoices?folder=7", nil)
		folderID, unfiled, ok := folderScope(r)
		require.True(t, ok)
		require.NotNil(t, folderID)
		assert.Equal(t, int64(7), *folderID)
		assert.False(t, unfiled)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		for _, raw := range []string{"x", "-1", "0"} {
			r := httptest.NewRequest("GET", "/api/invoices?folder="+raw, nil)
			_, _, ok := folderScope(r)
			assert.False(t, ok, "folder=%s should be rejected", raw)
		}
	})
}
