package service

import "context"

// CaptchaVerifier checks a client-supplied CAPTCHA response.
type CaptchaVerifier interface {
	// Enabled reports whether registration must present a CAPTCHA token.
	Enabled() bool

	// Verify returns false for a rejected token and an error when verification itself failed.
	Verify(ctx context.Context, token string) (bool, error)
}
