package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "inductee"}
		assert.Equal(t, "inductee not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "class"}
		err2 := &NotFoundError{Entity: "class"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInducteeNotFound, ErrClassNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get inductee: %w", ErrInducteeNotFound)
		assert.True(t, errors.Is(wrapped, ErrInducteeNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrChampionshipNotFound))
		assert.False(t, IsNotFound(ErrSeedRunning))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "admin already exists with this email", ErrAdminExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "class"}
		assert.Equal(t, "class already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAdminExists))
		assert.False(t, IsAlreadyExists(ErrAdminNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		assert.Equal(t, "validation error: file - only image files are allowed", ErrNotAnImage.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "required")))
		assert.True(t, IsValidation(fmt.Errorf("upload: %w", ErrFileTooLarge)))
		assert.False(t, IsValidation(ErrInducteeNotFound))
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageError("delete", "inductees/a.jpg", cause)

	assert.Equal(t, "storage delete inductees/a.jpg: permission denied", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsStorage(err))
	assert.False(t, IsStorage(cause))
}

func TestAuthenticationAndConfiguration(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(NewAuthenticationError("nope")))
	assert.False(t, IsAuthentication(ErrJWTSecretMissing))

	assert.True(t, IsConfiguration(ErrStorageBucketUnset))
	assert.True(t, IsConfiguration(NewConfigurationError("bad")))
	assert.Equal(t, "page not found", NewNotFoundError("page").Error())
}
