package todo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/shared/validator"
	"todoapp/transport/http/response"
)

const (
	MessageTodoAdded   = "Todo added"
	MessageTodoDeleted = "Todo deleted"
	MessageTodoUpdated = "Todo updated"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.AddTodo)
		routerGroup.Get("/uuid/{uuid}", handler.GetTodoByUUID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// detach keeps the request's values and span but not its cancellation.
// A submitted statement always runs to completion.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func parseID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// GetTodos returns every todo in ascending id order.
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(detach(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("todo.count", len(todos))

	response.WithJSON(writer, http.StatusOK, todos)
}

// AddTodo stores a new todo built from the request text.
func (handler *Handler) AddTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTodo")
	defer scope.End()

	req := dto.AddTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(detach(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo added")

	response.WithMessage(writer, http.StatusOK, MessageTodoAdded)
}

func (handler *Handler) GetTodoByUUID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByUUID")
	defer scope.End()

	todo, err := handler.service.Get(detach(ctx), chi.URLParam(request, constant.RequestParamUUID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo by uuid")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, todo)
}

// UpdateTodo overwrites text and completed. Unknown ids are reported as success.
func (handler *Handler) UpdateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(detach(ctx), req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo updated")

	response.WithMessage(writer, http.StatusOK, MessageTodoUpdated)
}

// DeleteTodo removes a todo. Unknown ids are reported as success.
func (handler *Handler) DeleteTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(detach(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo deleted")

	response.WithMessage(writer, http.StatusOK, MessageTodoDeleted)
}
