package models

import "time"

// Stored values for task status and category. The database keeps the
// English values; the chat surface maps them to Russian labels.
const (
	StatusNew  = "New"
	StatusDone = "Done"

	CategoryImportant   = "Important"
	CategoryUnimportant = "Unimportant"
)

type Task struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	User      int64     `db:"user"`
	CreatedAt time.Time `db:"created_at"`
	Status    string    `db:"status"`
	Category  string    `db:"category"`
}

func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusDone
}

func ValidCategory(c string) bool {
	return c == CategoryImportant || c == CategoryUnimportant
}

func StatusLabel(s string) string {
	if s == StatusDone {
		return "Выполнена"
	}
	return "Новый"
}

func StatusGlyph(s string) string {
	if s == StatusDone {
		return "✅"
	}
	return "🆕"
}

func CategoryLabel(c string) string {
	if c == CategoryImportant {
		return "Важная"
	}
	return "Неважная"
}

func CategoryGlyph(c string) string {
	if c == CategoryImportant {
		return "🔴"
	}
	return "⚪"
}
