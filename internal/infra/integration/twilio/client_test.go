package twilio

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostsFormWithBasicAuth(t *testing.T) {
	var gotForm map[string]string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Accounts/AC123/Messages.json", r.URL.Path)
		gotUser, gotPass, _ = r.BasicAuth()

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM900","status":"queued"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "token", "+15550009999", "https://example.com/cb?secret=s", server.URL)

	msg, err := client.Send("+15550001111", "hello")

	require.NoError(t, err)
	assert.Equal(t, "SM900", msg.SID)
	assert.Equal(t, StatusQueued, msg.Status)

	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "token", gotPass)
	assert.Equal(t, "+15550009999", gotForm["From"])
	assert.Equal(t, "+15550001111", gotForm["To"])
	assert.Equal(t, "hello", gotForm["Body"])
	assert.Equal(t, "https://example.com/cb?secret=s", gotForm["StatusCallback"])
}

func TestSendOmitsStatusCallbackWhenUnset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, present := r.PostForm["StatusCallback"]
		assert.False(t, present)
		w.Write([]byte(`{"sid":"SM901","status":"queued"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "token", "+15550009999", "", server.URL)

	_, err := client.Send("+15550001111", "hello")
	require.NoError(t, err)
}

func TestSendSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' phone number"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "token", "+15550009999", "", server.URL)

	msg, err := client.Send("bogus", "hello")

	assert.Nil(t, msg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
	assert.Contains(t, err.Error(), "Invalid 'To' phone number")
}

func TestSendUnconfigured(t *testing.T) {
	client := NewClient("", "", "", "", "")

	assert.False(t, client.Configured())

	msg, err := client.Send("+15550001111", "hello")
	assert.Nil(t, msg)
	assert.Error(t, err)
}
