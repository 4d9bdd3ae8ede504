package model

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldUUID      = "uuid"
	FieldText      = "text"
	FieldCompleted = "completed"
	FieldCreatedAt = "created_at"
)

// Todo is one row of the todos table. Text is stored exactly as given.
type Todo struct {
	ID        int64  `db:"id,autoincrement"`
	UUID      string `db:"uuid,immutable"       validate:"required,uuid4"`
	Text      string `db:"text"`
	Completed bool   `db:"completed"`
	CreatedAt string `db:"created_at,immutable" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// Changes is the mutable part of a Todo written by an update.
type Changes struct {
	Text      string `db:"text"`
	Completed bool   `db:"completed"`
}
