package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/shared/timezone"
	"todoapp/shared/validator"
)

type Todo interface {
	GetAll(ctx context.Context) ([]dto.TodoResponse, error)
	Get(ctx context.Context, uuid string) (dto.TodoResponse, error)
	Create(ctx context.Context, req dto.AddTodoRequest) error
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Get(ctx context.Context, uuid string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(uuid, "required,uuid4") != nil {
		return res, failure.InvalidUUIDParam
	}

	todo, err := s.repo.GetByUUID(ctx, uuid)
	if err != nil {
		log.Error().Err(err).Str("uuid", uuid).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound("todo not found") //nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.AddTodoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo := req.ToModel(timezone.Now())

	if err := validator.ValidateStruct(&todo); err != nil {
		log.Error().Err(err).Msg("generated todo is invalid")

		return failure.InternalError(err) //nolint:wrapcheck
	}

	if err = s.repo.Add(ctx, todo); err != nil {
		log.Error().Err(err).Str("uuid", todo.UUID).Msg("failed to create todo")

		if errors.Is(err, repository.ErrDuplicateUUID) {
			return failure.Conflict("todo with this uuid already exists") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to create todo: %w", err)
	}

	log.Debug().Str("uuid", todo.UUID).Msg("Todo created")

	return nil
}

// Update is a no-op for an id that does not exist.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	changes := req.ToChanges()

	if err = s.repo.Update(ctx, id, changes.Text, changes.Completed); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete is a no-op for an id that does not exist.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
