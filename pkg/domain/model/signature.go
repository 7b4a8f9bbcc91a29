package model

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const signaturePrefix = "sha256="

// Signature computes the GitHub webhook signature of body: the
// HMAC-SHA256 digest keyed by secret, rendered as lowercase hex with
// the "sha256=" prefix.
func Signature(secret types.WebhookSecret, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks header against the computed signature of
// body. An empty secret disables verification entirely. The hex value
// is compared case-insensitively in constant time.
func VerifySignature(secret types.WebhookSecret, body []byte, header string) error {
	if secret == "" {
		return nil
	}
	if header == "" {
		return goerr.Wrap(types.ErrSignatureMissing, "X-Hub-Signature-256 is required")
	}

	given, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return goerr.Wrap(types.ErrSignatureMismatch, "signature is not hex encoded")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	if !hmac.Equal(given, mac.Sum(nil)) {
		return goerr.Wrap(types.ErrSignatureMismatch, "signature does not match payload")
	}

	return nil
}
