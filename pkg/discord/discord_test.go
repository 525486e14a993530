package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresWebhook(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, errWebhookRequired)
}

func TestSendError_PostsEmbed(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := New(Config{WebhookURL: srv.URL})
	require.NoError(t, err)

	err = d.SendError(context.Background(), "dashboard failed", "GET /api/v1/dashboard", errors.New("qdrant down"))
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "dashboard failed", got.Embeds[0].Title)
	assert.Equal(t, colorError, got.Embeds[0].Color)
	assert.Contains(t, got.Embeds[0].Description, "qdrant down")
	assert.Equal(t, DefaultUsername, got.Username)
}

func TestSendInfo_SortsFields(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d, err := New(Config{WebhookURL: srv.URL})
	require.NoError(t, err)

	require.NoError(t, d.SendInfo(context.Background(), "ingestion", "done", map[string]string{"kept": "100", "fetched": "412"}))
	require.Len(t, got.Embeds[0].Fields, 2)
	assert.Equal(t, "fetched", got.Embeds[0].Fields[0].Name)
	assert.Equal(t, "kept", got.Embeds[0].Fields[1].Name)
}

func TestSend_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	d, err := New(Config{WebhookURL: srv.URL})
	require.NoError(t, err)
	assert.Error(t, d.ReportBug(context.Background(), "boom"))
}
