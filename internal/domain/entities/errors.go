package entities

import "errors"

var (
	// ErrHostingRequest marks transport failures and non-2xx responses from the hosting API.
	ErrHostingRequest = errors.New("hosting request failed")
	// ErrContentDecode marks file content that could not be decoded into text.
	ErrContentDecode = errors.New("content decode failed")
	// ErrUsernameNotFound is returned when no account could be verified for a name.
	ErrUsernameNotFound = errors.New("github username not found")
	// ErrUnknownProvider is returned by registries for unregistered names.
	ErrUnknownProvider = errors.New("unknown provider")
)
