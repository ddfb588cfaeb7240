package serviceerrors

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

// InsufficientStockError aborts a sale registration when a batch asks for
// more units of a product than the catalog holds. It carries the numbers
// the caller needs to re-prompt the user.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: %d available, %d requested", e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: e.Error()}
}

// ProductNotFoundError identifies which product id of a batch does not
// exist in the catalog.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error {
	return &ServiceError{Kind: KindNotFound, Message: e.Error()}
}
