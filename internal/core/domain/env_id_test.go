package domain_test

import (
	"testing"

	"go.trai.ch/kiln/internal/core/domain"
)

func TestGenerateEnvID_Deterministic(t *testing.T) {
	a := domain.GenerateEnvID(map[string]string{
		"openssl":  "3.0.13#sha256-aaa",
		"pkg-conf": "2.1#sha256-bbb",
	})
	b := domain.GenerateEnvID(map[string]string{
		"pkg-conf": "2.1#sha256-bbb",
		"openssl":  "3.0.13#sha256-aaa",
	})
	if a != b {
		t.Errorf("expected equal IDs for equal sets, got %q and %q", a, b)
	}
}

func TestGenerateEnvID_PinSensitive(t *testing.T) {
	a := domain.GenerateEnvID(map[string]string{"openssl": "3.0.13#sha256-aaa"})
	b := domain.GenerateEnvID(map[string]string{"openssl": "3.0.14#sha256-aaa"})
	if a == b {
		t.Error("expected different IDs for different pins")
	}
}
