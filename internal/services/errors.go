package services

import (
	"errors"
)

// Registry error taxonomy. Every error is terminal for the call that raised
// it, and a failed call leaves stored state untouched.
var (
	ErrAlreadyInitialized       = errors.New("registry already initialized")
	ErrNotInitialized           = errors.New("registry not initialized")
	ErrUnauthorized             = errors.New("caller is not the administrator")
	ErrInvalidGithubHandle      = errors.New("github handle must not be empty")
	ErrContributorAlreadyExists = errors.New("contributor already registered")
	ErrContributorNotFound      = errors.New("contributor not found")
	ErrGithubHandleTaken        = errors.New("github handle already taken")
	ErrReputationOverflow       = errors.New("reputation increase overflows")
)
