package repository

import (
	"context"

	"taskboard/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// TaskRepositoryI defines operations on Task entities.
type TaskRepositoryI interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, id int64, f models.TaskFields) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

var (
	_ UserRepositoryI = (*UserRepository)(nil)
	_ TaskRepositoryI = (*TaskRepository)(nil)
)
