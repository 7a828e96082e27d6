package lexoffice

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

func TestSendHeadersAndBody(t *testing.T) {
	var gotBody []byte
	var gotHeader http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"abc"}`)
	}))
	defer srv.Close()

	c := newClient(srv.URL+"/", "secret")

	result, status, err := c.send(context.Background(), "v1/invoices?finalize=true",
		map[string]string{"introduction": "hi"}, "POST")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":"abc"}`, string(result))

	assert.Equal(t, "Bearer secret", gotHeader.Get("Authorization"))
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "application/json", gotHeader.Get("Accept"))
	assert.Equal(t, "no-cache", gotHeader.Get("Cache-Control"))
	assert.JSONEq(t, `{"introduction":"hi"}`, string(gotBody))
}

func TestSendGetWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		io.WriteString(w, `{"content":[]}`)
	}))
	defer srv.Close()

	result, status, err := newClient(srv.URL+"/", "secret").
		send(context.Background(), "v1/contacts?email=a@x.com", nil, "GET")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	var page ContactPage
	require.NoError(t, json.Unmarshal(result, &page))
	assert.Empty(t, page.Content)
}

func TestSendStatusPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"not found"}`)
	}))
	defer srv.Close()

	// non-2xx statuses are no transport errors
	_, status, err := newClient(srv.URL+"/", "secret").
		send(context.Background(), "v1/contacts?email=x", nil, "GET")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSendInvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"html", "<html>maintenance</html>"},
		{"array", "[1,2,3]"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, _, err := newClient(srv.URL+"/", "secret").
				send(context.Background(), "v1/contacts", nil, "GET")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid response")
		})
	}
}

func TestSendConnectFailure(t *testing.T) {
	c := newClient("http://127.0.0.1:1/", "secret")

	_, _, err := c.send(context.Background(), "v1/contacts", nil, "GET")
	require.Error(t, err)
}
