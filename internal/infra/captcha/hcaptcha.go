// Package captcha verifies hCaptcha responses submitted at registration.
package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cromptch/config"
	"cromptch/internal/domain/service"

	"github.com/pkg/errors"
)

const verifyTimeout = 10 * time.Second

type hCaptchaVerifier struct {
	verifyURL  string
	secret     string
	httpClient *http.Client
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// NewCaptchaVerifier returns an hCaptcha verifier when a site key is configured,
// and a verifier that is never enabled otherwise.
func NewCaptchaVerifier(cfg *config.Config) service.CaptchaVerifier {
	if !cfg.CaptchaEnabled() {
		return disabledVerifier{}
	}

	return &hCaptchaVerifier{
		verifyURL:  cfg.HCaptcha.VerifyURL,
		secret:     cfg.HCaptcha.Secret,
		httpClient: &http.Client{Timeout: verifyTimeout},
	}
}

func (v *hCaptchaVerifier) Enabled() bool {
	return true
}

func (v *hCaptchaVerifier) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("response", token)
	form.Set("secret", v.secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "hcaptcha request failed")
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errors.Wrapf(err, "failed to decode hcaptcha response (status %d)", resp.StatusCode)
	}

	return body.Success, nil
}

type disabledVerifier struct{}

func (disabledVerifier) Enabled() bool { return false }

func (disabledVerifier) Verify(context.Context, string) (bool, error) { return true, nil }
