package redact

import (
	"strings"
	"testing"
)

func TestRedactDisabled(t *testing.T) {
	SetEnabled(false)
	in := "email a@b.com and phone +82 10 3456 7890"
	if got := Text(in); got != in {
		t.Fatalf("expected no redaction, got %q", got)
	}
}

func TestRedactEnabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)
	in := "email a@b.com and phone +82 10 3456 7890"
	got := Text(in)
	if got == in {
		t.Fatalf("expected redaction")
	}
	if want := "[REDACTED_EMAIL]"; !strings.Contains(got, want) {
		t.Fatalf("expected %q in output", want)
	}
	if want := "[REDACTED_PHONE]"; !strings.Contains(got, want) {
		t.Fatalf("expected %q in output", want)
	}
}

func TestAPIKeyMasking(t *testing.T) {
	if got := APIKey("tk_0123456789"); got != "tk_0*********" {
		t.Fatalf("unexpected mask %q", got)
	}
	if got := APIKey("abc"); got != "****" {
		t.Fatalf("short keys must be fully masked, got %q", got)
	}
	if got := APIKey(""); got != "" {
		t.Fatalf("empty key should stay empty, got %q", got)
	}
}
