// Package signature validates GitHub webhook payload authenticity.
package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// Prefix is the algorithm tag GitHub puts on the X-Hub-Signature header.
const Prefix = "sha1="

// Verify reports whether header carries a valid HMAC-SHA1 of body under
// secret, as GitHub sends it: "sha1=" plus the lowercase hex digest.
//
// It fails closed: an empty secret or an absent header is never valid. The
// comparison is constant-time.
func Verify(secret string, body []byte, header string) bool {
	if secret == "" || header == "" {
		return false
	}

	mac := hmac.New(sha1.New, []byte(secret))
	_, _ = mac.Write(body)
	want := Prefix + hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(want), []byte(header)) == 1
}
