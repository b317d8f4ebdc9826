package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"taskboard/models"
	"taskboard/repository"
)

// Register creates an account. Username and password must be non-empty.
func (s *Server) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password required")
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fiber.NewError(fiber.StatusBadRequest, "Password must be at most 72 bytes")
		}
		return fmt.Errorf("hash password: %w", err)
	}

	u, err := s.Users.Create(c.UserContext(), req.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return fiber.NewError(fiber.StatusConflict, "Username already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}

	resp, err := s.userResponse(u)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login verifies a username/password pair. Every mismatch is a 401.
func (s *Server) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	invalid := fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	if req.Username == "" || req.Password == "" {
		return invalid
	}

	u, err := s.Users.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return invalid
	}
	ok, rehash := s.Hasher.Verify(req.Password, u.PasswordHash)
	if !ok {
		return invalid
	}
	if rehash {
		s.rehash(c, u, req.Password)
	}

	resp, err := s.userResponse(u)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// rehash upgrades a stored password; failure does not fail the login.
func (s *Server) rehash(c *fiber.Ctx, u *models.User, password string) {
	hash, err := s.Hasher.Hash(password)
	if err == nil {
		err = s.Users.UpdatePassword(c.UserContext(), u.ID, hash)
	}
	if err != nil {
		log.Printf("[api] rehash password for user %d: %v", u.ID, err)
	}
}

func (s *Server) userResponse(u *models.User) (UserResponse, error) {
	resp := UserResponse{ID: u.ID, Username: u.Username}
	if s.Tokens == nil {
		return resp, nil
	}
	tok, err := s.Tokens.Issue(u)
	if err != nil {
		return UserResponse{}, fmt.Errorf("issue token: %w", err)
	}
	resp.Token = tok
	return resp, nil
}
