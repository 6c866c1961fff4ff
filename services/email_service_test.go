package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailSendPostsPayload(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	es := NewEmailService(server.URL)
	err := es.Send(context.Background(), "a@b.com", "Hello", "Body text")

	assert.NoError(t, err)
	assert.Equal(t, "/send-email", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{
		"email":   "a@b.com",
		"subject": "Hello",
		"message": "Body text",
	}, gotBody)
}

func TestEmailSendNon2xxIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	es := NewEmailService(server.URL)
	err := es.Send(context.Background(), "a@b.com", "Hello", "Body text")

	assert.ErrorContains(t, err, "status 500")
}

func TestEmailSendUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	es := NewEmailService(server.URL)
	err := es.Send(context.Background(), "a@b.com", "Hello", "Body text")

	assert.Error(t, err)
}
