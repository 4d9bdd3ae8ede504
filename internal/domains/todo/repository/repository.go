package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"todoapp/infras/otel"
	"todoapp/infras/sqlite"
	"todoapp/internal/domains/todo/model"
	"todoapp/shared"
	"todoapp/shared/constant"
	gDto "todoapp/shared/dto"
	gRepo "todoapp/shared/repository"
)

// ErrDuplicateUUID is returned by Add when another row already carries the uuid.
var ErrDuplicateUUID = errors.New("todo uuid already exists")

// Todo persists todo items. Every method is a single statement on a single
// borrowed connection, so callers may use it from many goroutines at once.
type Todo interface {
	List(ctx context.Context) ([]model.Todo, error)
	Add(ctx context.Context, todo model.Todo) error
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, text string, completed bool) error
	GetByUUID(ctx context.Context, uuid string) (model.Todo, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
	otel otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

// List returns every todo in ascending id order.
func (r *repositoryImpl) List(ctx context.Context) ([]model.Todo, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.List")
	defer scope.End()

	todos, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// Add inserts the todo. Its ID is ignored; SQLite assigns the next one.
func (r *repositoryImpl) Add(ctx context.Context, todo model.Todo) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Add")
	defer scope.End()

	id, err := r.Insert(ctx, todo)
	if err != nil {
		scope.TraceError(err)

		if sqlite.IsUniqueViolation(err) {
			return fmt.Errorf("failed to add todo: %w: %w", ErrDuplicateUUID, err)
		}

		return fmt.Errorf("failed to add todo: %w", err)
	}

	scope.SetAttribute("todo.id", id)

	return nil
}

// Delete removes the todo with the given id. An unknown id is not an error.
func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Delete")
	defer scope.End()

	affected, err := r.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	scope.SetAttribute("db.rows_affected", affected)

	return nil
}

// Update overwrites text and completed of the todo with the given id.
// An unknown id is not an error.
func (r *repositoryImpl) Update(ctx context.Context, id int64, text string, completed bool) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Update")
	defer scope.End()

	changes := shared.TransformFields(model.Changes{Text: text, Completed: completed})

	affected, err := r.Repository.Update(ctx, changes, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update todo: %w", err)
	}

	scope.SetAttribute("db.rows_affected", affected)

	return nil
}

// GetByUUID returns the zero Todo when no row carries the uuid.
func (r *repositoryImpl) GetByUUID(ctx context.Context, uuid string) (model.Todo, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.GetByUUID")
	defer scope.End()

	todo, err := r.Get(ctx, shared.FilterByID(uuid, model.FieldUUID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return model.Todo{}, fmt.Errorf("failed to get todo by uuid: %w", err)
	}

	return todo, nil
}
