package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"record not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), CodeNotFound, http.StatusNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, CodeConflict, http.StatusConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, CodeConflict, http.StatusConflict},
		{"validation", NewValidationError("bad", map[string]any{"name": "required"}), CodeValidation, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			de := ToDomainError(tc.err)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.status, de.HTTPStatus)
		})
	}
	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))
}

func TestWrapValidationKeepsCause(t *testing.T) {
	sentinel := errors.New("invalid record")
	err := WrapValidation(sentinel, "invalid staff file", map[string]any{"personal_email": "email"})

	assert.ErrorIs(t, err, sentinel)
	de := ToDomainError(fmt.Errorf("create: %w", err))
	assert.Equal(t, CodeValidation, de.Code)
	assert.Equal(t, "email", de.Details["personal_email"])
}

func TestNotFoundIsDetectable(t *testing.T) {
	err := NewNotFound("staff file", map[string]any{"id": 4})
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "staff file not found", err.Error()[:len("staff file not found")])
	assert.False(t, IsNotFound(errors.New("nope")))
}
