package httpapi

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskboard/internal/auth"
)

// ListTasks returns the tasks of ?userId= in storage order.
func (s *Server) ListTasks(c *fiber.Ctx) error {
	raw := c.Query("userId")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "User ID required")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID must be an integer")
	}
	if err := auth.RequireOwner(c, &userID); err != nil {
		return err
	}

	tasks, err := s.Tasks.ListByUserID(c.UserContext(), userID)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

// CreateTask stores a task and echoes it back with its id.
func (s *Server) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := decodeTaskBody(c.Body(), createTaskKeys, &req); err != nil {
		return err
	}
	if err := requireTitle(req.TaskFieldsRequest); err != nil {
		return err
	}
	if err := auth.RequireOwner(c, req.UserID); err != nil {
		return err
	}

	t, err := s.Tasks.Create(c.UserContext(), req.task())
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(CreateTaskResponse{ID: t.ID, CreateTaskRequest: req})
}

// UpdateTask overwrites a task's attributes. An unknown id is a no-op.
func (s *Server) UpdateTask(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	var req TaskFieldsRequest
	if err := decodeTaskBody(c.Body(), updateTaskKeys, &req); err != nil {
		return err
	}
	if err := requireTitle(req); err != nil {
		return err
	}
	if err := s.authorizeTask(c, id); err != nil {
		return err
	}

	if _, err := s.Tasks.Update(c.UserContext(), id, req.fields()); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return c.Status(fiber.StatusOK).JSON(req)
}

// DeleteTask removes a task. An unknown id is a no-op.
func (s *Server) DeleteTask(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	if err := s.authorizeTask(c, id); err != nil {
		return err
	}

	if _, err := s.Tasks.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Deleted"})
}

// authorizeTask checks ownership of an existing task for authenticated
// callers. Anonymous callers and unknown ids pass.
func (s *Server) authorizeTask(c *fiber.Ctx, id int64) error {
	if _, ok := auth.PrincipalFrom(c); !ok {
		return nil
	}
	t, err := s.Tasks.GetByID(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if t == nil {
		return nil
	}
	return auth.RequireOwner(c, t.UserID)
}

func taskID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}
