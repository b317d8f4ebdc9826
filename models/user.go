package models

// User represents an account in the system.
// It maps to the `users` table in SQLite.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	// PasswordHash holds the `password` column. It is a bcrypt hash for
	// accounts created by this service and may be plaintext for rows
	// written by older deployments.
	PasswordHash string `db:"password" json:"-"`
}
