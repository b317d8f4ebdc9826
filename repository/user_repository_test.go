package repository

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/testutil"
)

func TestUserRepository_CreateAndQueries(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "userrepo")
	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	u, err := repo.Create(ctx, "alice", "hash-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Username != "alice" {
		t.Fatalf("unexpected created user: %+v", u)
	}

	// GetByID
	g, err := repo.GetByID(ctx, u.ID)
	if err != nil || g == nil || g.Username != "alice" || g.PasswordHash != "hash-1" {
		t.Fatalf("get by id: %v %+v", err, g)
	}

	// GetByUsername
	g2, err := repo.GetByUsername(ctx, "alice")
	if err != nil || g2 == nil || g2.ID != u.ID {
		t.Fatalf("get by username: %v %+v", err, g2)
	}

	// UpdatePassword
	if err := repo.UpdatePassword(ctx, u.ID, "hash-2"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	g3, _ := repo.GetByUsername(ctx, "alice")
	if g3.PasswordHash != "hash-2" {
		t.Fatalf("password not updated: %+v", g3)
	}

	// Missing rows are (nil, nil)
	missing, err := repo.GetByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected nil user, got %+v err=%v", missing, err)
	}
	missing, err = repo.GetByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil user, got %+v err=%v", missing, err)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "userrepodup")
	repo := NewUserRepository(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "bob", "h"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, "bob", "h2")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM users WHERE username = 'bob'`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one bob row, got %d", n)
	}
}
