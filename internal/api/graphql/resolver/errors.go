package resolver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/itemgraph/internal/model"
)

const internalErrorMessage = "internal server error"

var typedErrors = []error{
	model.ErrNotFound,
	model.ErrExists,
	model.ErrAuthFailed,
	model.ErrUnauthorized,
	model.ErrForbidden,
	model.ErrInvalidInput,
}

func isTyped(err error) bool {
	for _, typed := range typedErrors {
		if errors.Is(err, typed) {
			return true
		}
	}
	return false
}

// publicError hides infrastructure failures from clients.
func (r *Resolver) publicError(op string, err error) error {
	if err == nil || isTyped(err) {
		return err
	}
	r.logger.Error("GraphQL resolver: operation failed",
		"operation", op,
		"error", err.Error())
	return errors.New(internalErrorMessage)
}

func (r *Resolver) failureMessage(op string, err error) *string {
	msg := r.publicError(op, err).Error()
	return &msg
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: malformed id %q", model.ErrInvalidInput, string(id))
	}
	return n, nil
}

func toID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}
