package crypto

import (
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef" // hex, 32 bytes

func TestSealOpenRoundTrip(t *testing.T) {
	svc, err := New(testKey)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	sealed, err := svc.Seal("942345678V")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if !strings.HasPrefix(sealed, "enc:") {
		t.Fatalf("expected sealed prefix, got %q", sealed)
	}
	if sealed == "942345678V" {
		t.Fatal("expected ciphertext to differ from plaintext")
	}

	opened, err := svc.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened != "942345678V" {
		t.Fatalf("round trip mismatch: %q", opened)
	}
}

func TestUnconfiguredPassesThrough(t *testing.T) {
	svc, err := New("")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if svc.Configured() {
		t.Fatal("expected unconfigured service")
	}

	sealed, err := svc.Seal("942345678V")
	if err != nil || sealed != "942345678V" {
		t.Fatalf("expected passthrough, got %q, %v", sealed, err)
	}
}

func TestOpenLegacyPlainValue(t *testing.T) {
	svc, err := New(testKey)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	// Documents written before encryption was enabled carry no prefix.
	opened, err := svc.Open("plain-value")
	if err != nil || opened != "plain-value" {
		t.Fatalf("expected legacy passthrough, got %q, %v", opened, err)
	}
}

func TestNewRejectsShortKey(t *testing.T) {
	if _, err := New("too-short"); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	svc, err := New(testKey)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	sealed, err := svc.Seal("secret")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	tampered := sealed[:len(sealed)-2] + "AA"
	if tampered == sealed {
		tampered = sealed[:len(sealed)-2] + "BB"
	}
	if _, err := svc.Open(tampered); err == nil {
		t.Fatal("expected tampered ciphertext to fail")
	}
}
