package answer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHuggingFaceResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "array of objects", body: `[{"generated_text":"Paris"}]`, want: "Paris"},
		{name: "array of strings", body: `["Tokyo"]`, want: "Tokyo"},
		{name: "object", body: `{"generated_text":"Rome"}`, want: "Rome"},
		{name: "bare string", body: `"Berlin"`, want: "Berlin"},
		{name: "empty array", body: `[]`, wantErr: true},
		{name: "object without text", body: `{"error":"loading"}`, wantErr: true},
		{name: "array of objects without text", body: `[{"score":0.9}]`, wantErr: true},
		{name: "number", body: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHuggingFaceResponse([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHuggingFaceGenerator_Generate(t *testing.T) {
	var gotReq hfRequest
	var gotAuth, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"generated_text":"Paris"}]`))
	}))
	defer srv.Close()

	g := NewHuggingFaceGenerator("hf-key", "", srv.URL, time.Second)
	got, err := g.Generate(context.Background(), Prompt("capital of France?"))

	require.NoError(t, err)
	assert.Equal(t, "Paris", got)
	assert.Equal(t, "Bearer hf-key", gotAuth)
	assert.Equal(t, "/google/flan-t5-base", gotPath)
	assert.Equal(t, "Answer in one word only: capital of France?", gotReq.Inputs)
	assert.Equal(t, 10, gotReq.Parameters.MaxNewTokens)
	assert.False(t, gotReq.Parameters.DoSample)
	assert.Equal(t, ProviderHuggingFace, g.Name())
}

func TestHuggingFaceGenerator_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer srv.Close()

	g := NewHuggingFaceGenerator("hf-key", "some/model", srv.URL, time.Second)
	_, err := g.Generate(context.Background(), "q")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "Model is currently loading")
}

func TestHuggingFaceGenerator_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The disconnect is only noticed once the body has been read.
		_, _ = io.ReadAll(r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	defer srv.CloseClientConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	g := NewHuggingFaceGenerator("hf-key", "", srv.URL, 5*time.Second)
	_, err := g.Generate(ctx, "q")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
