package dto

import (
	"time"

	"github.com/google/uuid"

	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"
	"todoapp/shared/timezone"
)

type AddTodoRequest struct {
	Text string `json:"text"`
}

// ToModel builds a new, not yet completed todo stamped with now.
func (r *AddTodoRequest) ToModel(now time.Time) model.Todo {
	return model.Todo{
		UUID:      uuid.NewString(),
		Text:      r.Text,
		Completed: false,
		CreatedAt: timezone.Format(now, constant.DateFormat),
	}
}

type UpdateTodoRequest struct {
	Text      string `json:"text"`
	Completed *bool  `json:"completed" validate:"required"`
}

func (r *UpdateTodoRequest) ToChanges() model.Changes {
	changes := model.Changes{Text: r.Text}

	if r.Completed != nil {
		changes.Completed = *r.Completed
	}

	return changes
}

type TodoResponse struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.UUID = model.UUID
	r.Text = model.Text
	r.Completed = model.Completed
	r.CreatedAt = model.CreatedAt
}

// FromModels keeps the order of models. An empty input gives an empty, non-nil slice.
func FromModels(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))

	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
