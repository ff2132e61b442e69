package model

type Size struct {
	ID        int64  `db:"id" json:"id"`
	Size      string `db:"size" json:"size"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
