package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// EntityUser is the entity name used in generic error codes for users.
const EntityUser = "User"

// catalog holds every statically defined error, in declaration order.
var catalog []*Error

func define(code, message string, typ ErrorType) *Error {
	e := newError(code, message, typ)
	catalog = append(catalog, e)
	return e
}

// User errors.
var (
	ErrUserMissingEmail    = define("User.MissingEmail", "Email is required.", ErrorTypeValidation)
	ErrUserEmailTooLong    = define("User.EmailTooLong", "Email exceeds the maximum allowed length.", ErrorTypeValidation)
	ErrUserMissingFullName = define("User.MissingFullName", "Full name is required.", ErrorTypeValidation)
	ErrUserFullNameTooLong = define("User.FullNameTooLong", "Full name exceeds the maximum allowed length.", ErrorTypeValidation)
	ErrUserEmailConflict   = define("User.EmailConflict", "Email is already registered.", ErrorTypeConflict)
)

// Request errors are raised by the HTTP boundary before a service is called.
var (
	ErrRequestMalformedBody  = define("Request.MalformedBody", "Request body is malformed.", ErrorTypeValidation)
	ErrRequestMalformedQuery = define("Request.MalformedQuery", "Query string is malformed.", ErrorTypeValidation)
	ErrRequestInvalidID      = define("Request.InvalidId", "Identifier is not a valid UUID.", ErrorTypeValidation)
)

// Auth errors guard the admin surface.
var (
	ErrAuthMissingToken       = define("Auth.MissingToken", "Authorization header is required.", ErrorTypeUnauthorized)
	ErrAuthInvalidToken       = define("Auth.InvalidToken", "Token is invalid or expired.", ErrorTypeUnauthorized)
	ErrAuthInsufficientRole   = define("Auth.InsufficientRole", "Token does not grant access to this resource.", ErrorTypeUnauthorized)
	ErrAuthInvalidCredentials = define("Auth.InvalidCredentials", "Invalid credentials.", ErrorTypeUnauthorized)
	ErrAuthTokenIssue         = define("Auth.TokenIssue", "Token could not be issued.", ErrorTypeUnexpected)
)

// ErrEntityNotFound builds the "{Entity}.NotFound" error for a missing id.
func ErrEntityNotFound(entity string, id uuid.UUID) *Error {
	return newError(
		entity+".NotFound",
		fmt.Sprintf("%s with id '%s' was not found.", entity, id),
		ErrorTypeNotFound,
	)
}

// ErrEntityUnexpected builds the "{Entity}.Unexpected" error. The message never
// includes the underlying cause.
func ErrEntityUnexpected(entity string) *Error {
	return newError(
		entity+".Unexpected",
		fmt.Sprintf("An unexpected error occurred while processing %s.", entity),
		ErrorTypeUnexpected,
	)
}

// Catalog returns every statically defined error.
func Catalog() []*Error {
	out := make([]*Error, len(catalog))
	copy(out, catalog)
	return out
}

// ErrDuplicateKey is wrapped by repositories when the store rejects a write
// on a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")
