package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerify_ValidSignature(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main"}`)
	if !Verify("topsecret", body, sign("topsecret", body)) {
		t.Fatalf("expected valid signature to verify")
	}
}

func TestVerify_EmptySecretFailsClosed(t *testing.T) {
	body := []byte(`{}`)
	if Verify("", body, sign("", body)) {
		t.Fatalf("expected verification to fail with empty secret, even with a matching header")
	}
}

func TestVerify_MissingHeaderFailsClosed(t *testing.T) {
	if Verify("topsecret", []byte(`{}`), "") {
		t.Fatalf("expected verification to fail with missing header")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	body := []byte(`{"after":"abc123"}`)
	if Verify("topsecret", body, sign("othersecret", body)) {
		t.Fatalf("expected signature under the wrong secret to be rejected")
	}
}

func TestVerify_TamperedBody(t *testing.T) {
	header := sign("topsecret", []byte(`{"after":"abc123"}`))
	if Verify("topsecret", []byte(`{"after":"evil"}`), header) {
		t.Fatalf("expected tampered body to be rejected")
	}
}

func TestVerify_WrongAlgorithmPrefix(t *testing.T) {
	body := []byte(`{}`)
	mac := hmac.New(sha1.New, []byte("topsecret"))
	mac.Write(body)
	header := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if Verify("topsecret", body, header) {
		t.Fatalf("expected non-sha1 prefix to be rejected")
	}
}
