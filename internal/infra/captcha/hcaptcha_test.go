package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cromptch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(t *testing.T, handler http.HandlerFunc) *hCaptchaVerifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	verifier := NewCaptchaVerifier(&config.Config{HCaptcha: &config.HCaptchaConfig{
		SiteKey:   "site",
		Secret:    "shh",
		VerifyURL: server.URL,
	}})
	require.True(t, verifier.Enabled())

	return verifier.(*hCaptchaVerifier)
}

func TestNewCaptchaVerifier_Disabled(t *testing.T) {
	verifier := NewCaptchaVerifier(&config.Config{HCaptcha: &config.HCaptchaConfig{Secret: "shh"}})
	assert.False(t, verifier.Enabled())

	ok, err := verifier.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHCaptchaVerifier_Verify(t *testing.T) {
	verifier := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "shh", r.PostForm.Get("secret"))

		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("response") == "good" {
			_, _ = w.Write([]byte(`{"success":true}`))

			return
		}
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	})

	ok, err := verifier.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.Verify(context.Background(), "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHCaptchaVerifier_MalformedResponse(t *testing.T) {
	verifier := newVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	})

	_, err := verifier.Verify(context.Background(), "good")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
