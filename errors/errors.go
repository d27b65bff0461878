/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a key is not present in a store
	ErrNotFound = errors.New("key not found")

	// ErrAlreadyRegistered is returned when a registration key is already taken
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNoRegistry is returned when a model type has no attribute registry
	ErrNoRegistry = errors.New("no attribute registry for type")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchemaDrift is returned when a YAML schema disagrees with the compiled registry
	ErrSchemaDrift = errors.New("schema drift")
)

// NotFoundError represents an error when a store key is not found
type NotFoundError struct {
	Store string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: key %q not found", e.Store, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyRegisteredError represents a duplicate registration
type AlreadyRegisteredError struct {
	Kind string
	Key  string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.Key)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// NoRegistryError reports a model type missing its attribute declaration
type NoRegistryError struct {
	Type string
}

func (e *NoRegistryError) Error() string {
	return fmt.Sprintf("no attribute registry for type %s", e.Type)
}

func (e *NoRegistryError) Is(target error) bool {
	return target == ErrNoRegistry
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// SchemaDriftError reports a mismatch between a YAML schema and a compiled registry
type SchemaDriftError struct {
	Model  string
	Detail string
}

func (e *SchemaDriftError) Error() string {
	return fmt.Sprintf("schema drift for model %q: %s", e.Model, e.Detail)
}

func (e *SchemaDriftError) Is(target error) bool {
	return target == ErrSchemaDrift
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(store, key string) error {
	return &NotFoundError{Store: store, Key: key}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(kind, key string) error {
	return &AlreadyRegisteredError{Kind: kind, Key: key}
}

// NewNoRegistryError creates a new NoRegistryError
func NewNoRegistryError(typeName string) error {
	return &NoRegistryError{Type: typeName}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSchemaDriftError creates a new SchemaDriftError
func NewSchemaDriftError(model, detail string) error {
	return &SchemaDriftError{Model: model, Detail: detail}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyRegistered checks if an error is a duplicate registration error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

// IsNoRegistry checks if an error reports a missing attribute registry
func IsNoRegistry(err error) bool {
	return errors.Is(err, ErrNoRegistry)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSchemaDrift checks if an error reports schema drift
func IsSchemaDrift(err error) bool {
	return errors.Is(err, ErrSchemaDrift)
}
