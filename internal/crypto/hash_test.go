package crypto

import (
	"errors"
	"strings"
	"testing"
)

// fastHasher keeps the suite quick; production parameters are covered by TestNewHasherParams.
func fastHasher() Hasher {
	h := NewHasher()
	h.Memory = 8 * 1024
	h.Iterations = 1
	return h
}

func TestNewHasherParams(t *testing.T) {
	hash, err := NewHasher().Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("Hash() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("Hash() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("Hash() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("Hash() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerify(t *testing.T) {
	h := fastHasher()
	hash, err := h.Hash("Tiger7Moon7Comet!")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "correct", candidate: "Tiger7Moon7Comet!", want: true},
		{name: "wrong", candidate: "tiger7moon7comet!", want: false},
		{name: "empty", candidate: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Verify(tt.candidate, hash)
			if err != nil {
				t.Fatalf("Verify() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyUsesStoredParams(t *testing.T) {
	hash, err := fastHasher().Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	ok, err := NewHasher().Verify("same-password", hash)
	if err != nil || !ok {
		t.Errorf("Verify() with different receiver params = %v, %v; want true", ok, err)
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	h := fastHasher()
	a, _ := h.Hash("same-password")
	b, _ := h.Hash("same-password")
	if a == b {
		t.Error("Hash() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "garbage", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "wrong algorithm", encoded: "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", wantErr: ErrInvalidHashFormat},
		{name: "wrong version", encoded: "$argon2id$v=16$m=65536,t=3,p=2$c2FsdA$aGFzaA", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$m=x$c2FsdA$aGFzaA", wantErr: ErrInvalidHashFormat},
		{name: "bad salt", encoded: "$argon2id$v=19$m=65536,t=3,p=2$!!$aGFzaA", wantErr: ErrInvalidHashFormat},
		{name: "empty key", encoded: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$", wantErr: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHasher().Verify("password", tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
