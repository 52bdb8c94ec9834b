package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/impact-vault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetETHToUSDRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "ethereum", r.URL.Query().Get("ids"))
		w.Write([]byte(`{"ethereum":{"usd":3141.5926}}`))
	}))
	defer srv.Close()

	rate, err := NewCoinGeckoClientWithURL(srv.URL).GetETHToUSDRate(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "3141.59", rate)
}

func TestGetETHToUSDRateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewCoinGeckoClientWithURL(srv.URL).GetETHToUSDRate(t.Context())
	assert.ErrorContains(t, err, "status 429")
}

func TestCompletionClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tiny-model", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "what is harvest?", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"tiny-model",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Harvest sends yield to charity."},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`))
	}))
	defer srv.Close()

	c := NewCompletionClient("test-key", srv.URL, "tiny-model")
	reply, err := c.Complete(t.Context(), []model.ChatMessage{
		{Role: model.ChatRoleSystem, Content: "be brief"},
		{Role: model.ChatRoleUser, Content: "what is harvest?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Harvest sends yield to charity.", reply)
}

func TestCompletionClientNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewCompletionClient("k", srv.URL, "m").Complete(t.Context(), nil)
	assert.Error(t, err)
}

func TestNewVaultClientRejectsBadAddress(t *testing.T) {
	_, err := NewVaultClient(t.Context(), "http://127.0.0.1:1", "not-an-address")
	assert.ErrorContains(t, err, "invalid contract address")
}
