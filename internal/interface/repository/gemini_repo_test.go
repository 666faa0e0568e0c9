package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"departly/internal/domain/repository"
	"departly/pkg/logger"
)

func TestGenerateContent(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Day 1: Lalbagh Botanical Garden."}]}, "finishReason": "STOP"}]}`))
	}))
	defer srv.Close()

	repo := NewGeminiRepository(srv.Client(), srv.URL, "gem-key", "gemini-1.5-flash", logger.NewNop())
	text, err := repo.GenerateContent(context.Background(), "plan one day in Bengaluru")
	require.NoError(t, err)
	require.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	require.Equal(t, "Day 1: Lalbagh Botanical Garden.", text)

	var sent generateRequest
	require.NoError(t, json.Unmarshal([]byte(gotBody), &sent))
	require.Len(t, sent.Contents, 1)
	require.Equal(t, "plan one day in Bengaluru", sent.Contents[0].Parts[0].Text)
}

func TestGenerateContentQuota(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "Resource has been exhausted", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	repo := NewGeminiRepository(srv.Client(), srv.URL, "gem-key", "gemini-1.5-flash", logger.NewNop())
	_, err := repo.GenerateContent(context.Background(), "prompt")
	require.ErrorIs(t, err, repository.ErrQuotaExhausted)
}

func TestGenerateContentHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	repo := NewGeminiRepository(srv.Client(), srv.URL, "bad", "gemini-1.5-flash", logger.NewNop())
	_, err := repo.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	require.NotErrorIs(t, err, repository.ErrQuotaExhausted)
	require.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	repo := NewGeminiRepository(srv.Client(), srv.URL, "gem-key", "gemini-1.5-flash", logger.NewNop())
	_, err := repo.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no content")
}
