package model

// Timestamps are stored as SQLite TEXT ("YYYY-MM-DD HH:MM:SS").
type Timestamps struct {
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at"`
}

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)
