package apperrors

import (
	"errors"
	"testing"
)

func TestPublicMessage_UsesMessage(t *testing.T) {
	sentinel := errors.New("dial tcp: connection refused")
	err := New(KindTransient, "Gemini request failed.", sentinel)
	if got := PublicMessage(err); got != "Gemini request failed." {
		t.Fatalf("PublicMessage() = %q, want %q", got, "Gemini request failed.")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestNew_DefaultMessage(t *testing.T) {
	err := Config(errors.New("apiKey empty"))
	if got := err.Error(); got != "Invalid configuration." {
		t.Fatalf("Error() = %q, want default config message", got)
	}
}

func TestKindOfAndRetryable(t *testing.T) {
	tests := []struct {
		kind      Kind
		retryable bool
	}{
		{KindRateLimit, true},
		{KindTransient, true},
		{KindValidation, false},
		{KindAuth, false},
		{KindConfig, false},
		{KindBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := New(tt.kind, "", errors.New("boom"))
			kind, ok := KindOf(err)
			if !ok || kind != tt.kind {
				t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, tt.kind)
			}
			if got := IsRetryable(err); got != tt.retryable {
				t.Fatalf("IsRetryable() = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	err := HTTP(KindTransient, 503, "upstream down", nil)
	status, ok := StatusOf(err)
	if !ok || status != 503 {
		t.Fatalf("StatusOf() = (%d, %v), want (503, true)", status, ok)
	}
	if _, ok := StatusOf(New(KindConfig, "", nil)); ok {
		t.Fatalf("expected no status for config error")
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
	if PublicMessage(nil) != "" {
		t.Fatalf("expected empty message for nil error")
	}
}
