package sender

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTwilioForTest(t *testing.T, handler http.HandlerFunc) (*TwilioSender, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tw, err := NewTwilioSender(TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+15550000000",
	})
	require.NoError(t, err)
	tw.baseURL = srv.URL
	return tw, srv
}

func TestTwilioSendSMS(t *testing.T) {
	var bodies []string
	var tos []string
	tw, _ := newTwilioForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		tos = append(tos, r.PostForm.Get("To"))
		bodies = append(bodies, r.PostForm.Get("Body"))
		assert.Equal(t, "+15550000000", r.PostForm.Get("From"))
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		w.WriteHeader(http.StatusCreated)
	})

	result, err := tw.SendSMS(context.Background(), "+250788123456", "NITIFIER", "plain", "hello there")
	require.NoError(t, err)
	assert.NotEmpty(t, result.MessageID)
	assert.Equal(t, []string{"+250788123456"}, tos)
	assert.Equal(t, []string{"hello there"}, bodies)
}

func TestTwilioSendSMSCommaListFansOut(t *testing.T) {
	var tos []string
	tw, _ := newTwilioForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		tos = append(tos, r.PostForm.Get("To"))
		w.WriteHeader(http.StatusCreated)
	})

	_, err := tw.SendSMS(context.Background(), "+250788123456, +250788000222", "NITIFIER", "plain", "hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"+250788123456", "+250788000222"}, tos)
}

func TestTwilioRejectionIsProviderError(t *testing.T) {
	tw, _ := newTwilioForTest(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid number"}`, http.StatusBadRequest)
	})

	_, err := tw.SendSMS(context.Background(), "+123", "NITIFIER", "plain", "hi")
	require.Error(t, err)
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, http.StatusBadRequest, pe.StatusCode)
	assert.Contains(t, pe.Detail, "invalid number")
}

func TestTwilioUnreachableIsNoResponse(t *testing.T) {
	tw, srv := newTwilioForTest(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := tw.SendSMS(context.Background(), "+250788123456", "NITIFIER", "plain", "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoResponse))
}

func TestTwilioEmptyRecipientList(t *testing.T) {
	tw, _ := newTwilioForTest(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := tw.SendSMS(context.Background(), " , ", "NITIFIER", "plain", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty recipient list")
}

func TestNewSenderConfigValidation(t *testing.T) {
	_, err := NewTwilioSender(TwilioConfig{})
	assert.Error(t, err)

	_, err = NewSMTPSender(SMTPConfig{Host: "smtp.example.com"})
	assert.Error(t, err)

	_, err = NewSMTPSender(SMTPConfig{Host: "h", Port: "587", Username: "u", Password: "p"})
	assert.NoError(t, err)
}
