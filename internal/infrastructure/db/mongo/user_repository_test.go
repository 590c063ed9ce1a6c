package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

func dupKeyErr(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: msg}},
	}
}

func TestDuplicateKeyToDomain(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"email index",
			dupKeyErr(`E11000 duplicate key error collection: agrismart.users index: email_1 dup key: { email: "bob@example.com" }`),
			domain.ErrEmailTaken,
		},
		{
			"phone index",
			dupKeyErr(`E11000 duplicate key error collection: agrismart.users index: phone_1 dup key: { phone: "+254700000001" }`),
			domain.ErrPhoneTaken,
		},
		{
			// The duplicate value mentions "email" but the violated index is
			// the phone one; classification must follow the index name.
			"phone index with email-like value",
			dupKeyErr(`E11000 duplicate key error collection: agrismart.users index: phone_1 dup key: { phone: "email@example.com" }`),
			domain.ErrPhoneTaken,
		},
		{
			"plain error with index marker",
			errors.New(`E11000 duplicate key error collection: agrismart.users index: email_1 dup key: { email: "x" }`),
			domain.ErrEmailTaken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := duplicateKeyToDomain(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDuplicateKeyToDomain_UnknownIndex(t *testing.T) {
	err := dupKeyErr(`E11000 duplicate key error collection: agrismart.users index: legacy_1 dup key: { legacy: "x" }`)
	got := duplicateKeyToDomain(err)
	if errors.Is(got, domain.ErrEmailTaken) || errors.Is(got, domain.ErrPhoneTaken) {
		t.Fatalf("unknown index must not map to a field conflict, got %v", got)
	}
	if got == nil {
		t.Fatalf("expected the original error preserved")
	}
}

func TestViolatedIndex(t *testing.T) {
	msg := `E11000 duplicate key error collection: agrismart.users index: phone_1 dup key: { phone: "+254700000001" }`
	if got := violatedIndex(msg); got != "phone_1" {
		t.Fatalf("expected phone_1, got %q", got)
	}
	if got := violatedIndex("write concern timeout"); got != "" {
		t.Fatalf("expected empty index name, got %q", got)
	}
}
