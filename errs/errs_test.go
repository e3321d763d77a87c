package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNotFoundErrorKeepsMessageAndSentinel(t *testing.T) {
	err := NewNotFoundError("Application not found")
	assert.Equal(t, "Application not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, IsNotFound(err))
}

func TestBadRequestAndConflict(t *testing.T) {
	bad := NewBadRequestError("Tag already associated with application")
	assert.Equal(t, "Tag already associated with application", bad.Message())
	assert.ErrorIs(t, bad, ErrBadRequest)

	conflict := NewConflictError("Username already exists")
	assert.ErrorIs(t, conflict, ErrConflict)
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)
}

func TestUnauthorizedMessage(t *testing.T) {
	assert.Equal(t, "User not authenticated", Unauthorized.Error())
	assert.ErrorIs(t, Unauthorized, ErrUnauthorized)
}

func TestNewDatabaseError(t *testing.T) {
	notFound := NewDatabaseError("find", "application", gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.Equal(t, "application not found", notFound.Error())

	dup := NewDatabaseError("create", "tag", fmt.Errorf("ERROR: duplicate key value violates unique constraint"))
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
	assert.True(t, IsUniqueConstraintViolationError(dup))

	generic := NewDatabaseError("update", "application", errors.New("syntax error at or near"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
	assert.ErrorIs(t, generic, ErrDatabaseQuery)
	assert.Contains(t, generic.GetFullError(), "syntax error")

	passthrough := NewBadRequestError("invalid status")
	assert.Same(t, passthrough, NewDatabaseError("update", "application", passthrough))
}

func TestNewDatabaseErrorForeignKey(t *testing.T) {
	err := NewDatabaseError("create", "note", errors.New(`insert violates foreign key constraint "fk_notes_application"`))
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.ErrorIs(t, err, ErrForeignKeyConstraint)
}

func TestFieldErrors(t *testing.T) {
	missing := NewMissingRequiredFieldError("position")
	assert.ErrorIs(t, missing, ErrMissingRequiredField)
	assert.Equal(t, "position", missing.Field)
	assert.Equal(t, "Missing required field: position", missing.Details)

	invalid := NewInvalidFieldError("status", "unknown status")
	assert.ErrorIs(t, invalid, ErrInvalidField)
	assert.NotErrorIs(t, invalid, ErrMissingRequiredField)
	assert.Equal(t, http.StatusBadRequest, invalid.StatusCode)
}
