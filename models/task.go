package models

// Task represents a to-do item.
// Storage columns are snake_case; the JSON names are what clients see.
// Nullable columns are pointers to distinguish null from empty.
type Task struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	DueDate     *string `db:"due_date" json:"dueDate"`
	Priority    *string `db:"priority" json:"priority"`
	Status      *string `db:"status" json:"status"`
	// UserID is a soft reference to users.id; it is not checked on write
	// and cannot change after creation.
	UserID *int64 `db:"user_id" json:"userId"`
}

// TaskFields are the attributes an update overwrites.
type TaskFields struct {
	Title       string
	Description *string
	DueDate     *string
	Priority    *string
	Status      *string
}
