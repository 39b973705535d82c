package email

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Send_PostsMailRequest(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient("test-key", "noreply@example.com")
	client.SetHost(server.URL)

	err := client.Send(context.Background(), Message{
		To:      "manager@example.com",
		Subject: "New application: Housekeeper",
		HTML:    "<h2>New Application Received</h2>",
	})
	require.NoError(t, err)

	from := body["from"].(map[string]any)
	assert.Equal(t, "noreply@example.com", from["email"])
	assert.Equal(t, "New application: Housekeeper", body["subject"])
}

func Test_Send_ReturnsProviderDiagnosticOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"does not contain a valid address"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "noreply@example.com")
	client.SetHost(server.URL)

	err := client.Send(context.Background(), Message{To: "broken", Subject: "s", HTML: "<p>x</p>"})
	assert.ErrorContains(t, err, "status 400")
	assert.ErrorContains(t, err, "valid address")
}
