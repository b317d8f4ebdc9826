package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "complex password", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "密码123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == tt.password {
				t.Fatal("Hash() returned the original password")
			}
			ok, rehash := hasher.Verify(tt.password, hash)
			if !ok || rehash {
				t.Fatalf("Verify() = %v, %v; want true, false", ok, rehash)
			}
			if ok, _ := hasher.Verify(tt.password+"x", hash); ok {
				t.Fatal("Verify() accepted a wrong password")
			}
		})
	}
}

func TestPasswordHasher_LegacyPlaintext(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	ok, rehash := hasher.Verify("hunter2", "hunter2")
	if !ok || !rehash {
		t.Fatalf("Verify(plaintext match) = %v, %v; want true, true", ok, rehash)
	}
	ok, rehash = hasher.Verify("hunter3", "hunter2")
	if ok || rehash {
		t.Fatalf("Verify(plaintext mismatch) = %v, %v; want false, false", ok, rehash)
	}
}

func TestPasswordHasher_CostChangeNeedsRehash(t *testing.T) {
	old := NewPasswordHasher(bcrypt.MinCost)
	hash, err := old.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	ok, rehash := NewPasswordHasher(bcrypt.MinCost+1).Verify("pw", hash)
	if !ok || !rehash {
		t.Fatalf("Verify() = %v, %v; want true, true", ok, rehash)
	}
}

func TestPasswordHasher_UniqueHashes(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	h1, _ := hasher.Hash("same")
	h2, _ := hasher.Hash("same")
	if h1 == h2 {
		t.Error("Hash() produced identical hashes for the same password")
	}
}
