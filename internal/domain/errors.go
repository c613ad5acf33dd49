package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks input the caller can fix (telefone inválido,
// coluna obrigatória ausente etc). Never emitted after a store write.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// StoreError wraps any failure talking to the spreadsheet backend.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("store error: %v", e.Err)
	}
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e StoreError) Unwrap() error { return e.Err }

// ContractError means the store answered in a shape we no longer
// recognize (e.g. an updatedRange that does not match the grammar).
// Fatal to the current submission, not retriable here.
type ContractError struct {
	Msg string
	Err error
}

func (e ContractError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "store contract violation"
}

func (e ContractError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}

func IsContract(err error) bool {
	var target ContractError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
