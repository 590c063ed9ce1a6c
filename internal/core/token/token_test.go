package token

import (
	"testing"
	"time"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

func TestIssuer_IssueAndVerify(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	raw, err := iss.Issue("user_1", domain.RoleFarmer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, role, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("expected subject user_1, got %s", userID)
	}
	if role != domain.RoleFarmer {
		t.Fatalf("expected role farmer, got %s", role)
	}
}

func TestIssuer_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	iss := NewIssuer("secret", DefaultTTL)
	iss.now = func() time.Time { return issued }

	raw, err := iss.Issue("user_1", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Six days after issuance the token is still within its 7-day window.
	iss.now = func() time.Time { return issued.Add(6 * 24 * time.Hour) }
	if _, _, err := iss.Verify(raw); err != nil {
		t.Fatalf("expected token valid at +6d, got %v", err)
	}

	// Eight days after issuance it must be rejected.
	iss.now = func() time.Time { return issued.Add(8 * 24 * time.Hour) }
	if _, _, err := iss.Verify(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken at +8d, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	raw, err := NewIssuer("secret-a", time.Hour).Issue("user_1", domain.RoleFarmer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, _, err := NewIssuer("secret-b", time.Hour).Verify(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for rotated secret, got %v", err)
	}
}

func TestIssuer_Malformed(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	if _, _, err := iss.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, _, err := iss.Verify(""); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty input, got %v", err)
	}
}
