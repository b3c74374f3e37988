package model

import (
	"lembra/shared/model"
	"time"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldIsDone      = "is_done"
	FieldReminder    = "reminder"
)

// ListOrder keeps pending items before completed ones, newest-created
// first within each group.
const ListOrder = "todos.is_done ASC, todos.created_at DESC"

type Todo struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	IsDone      bool       `db:"is_done"`
	Reminder    *time.Time `db:"reminder"`
	model.Metadata
}
