package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getMonth(t *testing.T, srv *CalendarServer, target string) (*httptest.ResponseRecorder, MonthResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var body MonthResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	}
	return w, body
}

func TestMonth_English(t *testing.T) {
	srv := newTestServer(t, "0")

	w, body := getMonth(t, srv, "/api/month/1447/9")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, config.MimeJSON, w.Header().Get(config.HeaderContentType))
	assert.Equal(t, "en", w.Header().Get(config.HeaderContentLanguage))

	assert.Equal(t, 1447, body.Year)
	assert.Equal(t, 9, body.Month)
	assert.Equal(t, "Ramadan 1447", body.Title)
	assert.Equal(t, []string{"S", "S", "M", "T", "W", "T", "F"}, body.Weekdays)
	require.Len(t, body.Cells, config.GridCells)

	// Ramadan 1447 starts on a Wednesday, column 4.
	for i := 0; i < 4; i++ {
		assert.True(t, body.Cells[i].Empty)
	}
	first := body.Cells[4]
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, "1", first.Label)
	assert.Equal(t, "2026-02-18", first.Gregorian)
	assert.True(t, first.Today)
	assert.Equal(t, 30, body.Cells[33].Day)
	assert.True(t, body.Cells[34].Empty)
}

func TestMonth_Arabic(t *testing.T) {
	srv := newTestServer(t, "0")

	w, body := getMonth(t, srv, "/api/month/1447/9?locale=ar")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "ar", body.Locale)
	assert.Equal(t, "رمضان ١٤٤٧", body.Title)
	assert.Equal(t, "١٠", body.Cells[13].Label)
	assert.Equal(t, 10, body.Cells[13].Day)
}

func TestMonth_BadRequests(t *testing.T) {
	srv := newTestServer(t, "0")

	for _, target := range []string{
		"/api/month/1447/13",
		"/api/month/1447/0",
		"/api/month/abc/9",
		"/api/month/0/1",
	} {
		t.Run(target, func(t *testing.T) {
			w, _ := getMonth(t, srv, target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMonth_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, "0")

	req := httptest.NewRequest(http.MethodPost, "/api/month/1447/9", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    string
		wantErr string
	}{
		{config.DefaultPort, ""},
		{"1", ""},
		{"65535", ""},
		{"", config.ErrPortRequired},
		{"http", config.ErrPortNumber},
		{"0", config.ErrPortRange},
		{"70000", config.ErrPortRange},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			err := ValidatePort(tt.port)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
