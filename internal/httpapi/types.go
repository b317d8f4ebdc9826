package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"taskboard/models"
)

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is returned by register and login.
// Token is only set when token issuance is configured.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// TaskFieldsRequest holds the attributes shared by create and update.
// Every key must be present in the body; null is accepted except for title.
type TaskFieldsRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	TaskFieldsRequest
	UserID *int64 `json:"userId"`
}

// CreateTaskResponse echoes the created task with its new id.
type CreateTaskResponse struct {
	ID int64 `json:"id"`
	CreateTaskRequest
}

// MessageResponse carries a plain status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error.
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	updateTaskKeys = []string{"title", "description", "dueDate", "priority", "status"}
	createTaskKeys = append(append([]string{}, updateTaskKeys...), "userId")
)

func (r TaskFieldsRequest) fields() models.TaskFields {
	f := models.TaskFields{
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Status:      r.Status,
	}
	if r.Title != nil {
		f.Title = *r.Title
	}
	return f
}

func (r CreateTaskRequest) task() *models.Task {
	f := r.fields()
	return &models.Task{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.DueDate,
		Priority:    f.Priority,
		Status:      f.Status,
		UserID:      r.UserID,
	}
}

// decodeTaskBody checks that every required key is present, then decodes
// body into dst. All failures are 400s.
func decodeTaskBody(body []byte, required []string, dst any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	for _, k := range required {
		if _, ok := raw[k]; !ok {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s required", k))
		}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s has an invalid type", te.Field))
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func requireTitle(r TaskFieldsRequest) error {
	if r.Title == nil {
		return fiber.NewError(fiber.StatusBadRequest, "title must not be null")
	}
	return nil
}
