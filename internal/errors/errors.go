package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// StorageError wraps a failure reported by the object storage backend.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrClassNotFound             = &NotFoundError{Entity: "class"}
	ErrInducteeNotFound          = &NotFoundError{Entity: "inductee"}
	ErrPhotoNotFound             = &NotFoundError{Entity: "photo"}
	ErrVideoNotFound             = &NotFoundError{Entity: "video"}
	ErrChampionshipNotFound      = &NotFoundError{Entity: "championship"}
	ErrChampionshipPhotoNotFound = &NotFoundError{Entity: "championship photo"}
	ErrPageNotFound              = &NotFoundError{Entity: "page"}
	ErrAdminNotFound             = &NotFoundError{Entity: "admin"}
	ErrDocumentNotFound          = &NotFoundError{Entity: "document"}
)

// Already Exists Errors
var (
	ErrAdminExists = &AlreadyExistsError{Entity: "admin", Context: "with this email"}
)

// Upload Errors
var (
	ErrNotAnImage    = &ValidationError{Field: "file", Message: "only image files are allowed"}
	ErrFileTooLarge  = &ValidationError{Field: "file", Message: "image must be 5MB or smaller"}
	ErrUnknownFolder = &ValidationError{Field: "folder", Message: "unknown upload folder"}
	ErrNotHostedURL  = errors.New("url is not served by the configured storage bucket")
)

// Page Editing Errors
var (
	ErrUnknownPage       = &ValidationError{Field: "page", Message: "unknown page"}
	ErrUnknownSection    = &ValidationError{Field: "section", Message: "unknown page section"}
	ErrItemIndexRange    = &ValidationError{Field: "index", Message: "item index out of range"}
	ErrUnknownEditAction = &ValidationError{Field: "action", Message: "unknown edit action"}
)

// Seeding Errors
var (
	ErrSeedRunning = errors.New("seeding is already running")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingSession     = &AuthenticationError{Message: "no active session"}
	ErrTokenExpired       = &AuthenticationError{Message: "token has expired"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing      = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrFirestoreProjectUnset = &ConfigurationError{Message: "FIRESTORE_PROJECT_ID is required for the firestore backend"}
	ErrStorageBucketUnset    = &ConfigurationError{Message: "STORAGE_BUCKET is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsStorage checks if an error came from the object storage backend
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStorageError wraps err with the storage operation and object path
func NewStorageError(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Err: err}
}
