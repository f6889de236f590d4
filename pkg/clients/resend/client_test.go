package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckscontracting/demo-request/pkg/models"
)

func testNotification() models.Notification {
	return models.Notification{
		From:    "Website <noreply@example.com>",
		To:      []string{"admin@example.com"},
		Subject: "New Demo Request - Acme",
		HTML:    "<p>hi</p>",
		Text:    "hi",
		ReplyTo: "jo@acme.com",
	}
}

func TestSendSuccess(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	client := NewClient("re_test", srv.URL+"/")
	receipt, err := client.Send(context.Background(), testNotification())
	require.NoError(t, err)

	assert.Equal(t, "email_123", receipt.ID)
	assert.Equal(t, "Website <noreply@example.com>", got["from"])
	assert.Equal(t, []interface{}{"admin@example.com"}, got["to"])
	assert.Equal(t, "New Demo Request - Acme", got["subject"])
	assert.Equal(t, "<p>hi</p>", got["html"])
	assert.Equal(t, "hi", got["text"])
	assert.Equal(t, "jo@acme.com", got["reply_to"])
}

func TestSendOmitsEmptyReplyTo(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email_456"}`))
	}))
	defer srv.Close()

	n := testNotification()
	n.ReplyTo = ""
	_, err := NewClient("re_test", srv.URL).Send(context.Background(), n)
	require.NoError(t, err)

	_, present := got["reply_to"]
	assert.False(t, present)
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	_, err := NewClient("re_test", srv.URL).Send(context.Background(), testNotification())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Name)
	assert.Equal(t, "Invalid from field", apiErr.Message)
}

func TestSendNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := NewClient("re_test", srv.URL).Send(context.Background(), testNotification())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient("re_test", url).Send(context.Background(), testNotification())
	assert.Error(t, err)
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("re_test", "").(*clientImpl)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
