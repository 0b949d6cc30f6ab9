package datasource

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/sirupsen/logrus"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// Registry resolves a datasource id to its handler. Built-ins are keyed by
// their reserved integer codes; external handlers are registered once at
// startup under an id derived from their name, so the registered set is
// deterministic for the lifetime of the process.
type Registry struct {
	logger   *logrus.Logger
	handlers map[string]Datasource
}

func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{
		logger:   logger,
		handlers: make(map[string]Datasource),
	}
}

// RegisterBuiltin binds a handler to one of the reserved integer codes.
func (r *Registry) RegisterBuiltin(code int, handler Datasource) {
	r.handlers[strconv.Itoa(code)] = handler
}

// Register adds an external handler under the namespaced id
// ExternalPrefix + snake_case(name). A duplicate id keeps the handler
// registered first and logs a warning; registration of others continues.
func (r *Registry) Register(handler Datasource) string {
	id := ExternalPrefix + strcase.ToSnake(handler.Name())
	if _, ok := r.handlers[id]; ok {
		r.logger.Warnf("datasource with the same id already registered: %s (%s)", id, handler.Name())
		return id
	}
	r.handlers[id] = handler

	return id
}

// ListAll returns id to display name for every registered handler.
func (r *Registry) ListAll() map[string]string {
	result := make(map[string]string, len(r.handlers))
	for id, handler := range r.handlers {
		result[id] = handler.Name()
	}

	return result
}

// ListTemplates returns id to input template for every registered handler.
func (r *Registry) ListTemplates() map[string][]api.TemplateField {
	result := make(map[string][]api.TemplateField, len(r.handlers))
	for id, handler := range r.handlers {
		result[id] = handler.Template()
	}

	return result
}

// Name returns the display name for one handler id.
func (r *Registry) Name(id string) (string, bool) {
	handler, ok := r.handlers[id]
	if !ok {
		return "", false
	}

	return handler.Name(), true
}

// Read dispatches to the handler registered under id. Handler read failures
// surface as upstream failures with the handler error preserved.
func (r *Registry) Read(
	ctx context.Context, id string, options map[string]string,
) (*api.ReadResult, *contract.Error) {
	handler, ok := r.handlers[id]
	if !ok {
		return nil, contract.NewError(
			contract.ErrorCodeResourceDoesNotExist,
			fmt.Sprintf("no datasource with id=%s exists", id),
		)
	}

	result, err := handler.ReadData(ctx, options)
	if err != nil {
		var cErr *contract.Error
		if errors.As(err, &cErr) {
			return nil, cErr
		}

		return nil, contract.NewErrorWith(
			contract.ErrorCodeUpstreamFailure,
			fmt.Sprintf("datasource %q read failed", handler.Name()),
			err,
		)
	}

	return result, nil
}
