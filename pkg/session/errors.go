package session

import "errors"

var (
	// ErrNoSecret indicates the manager was built without a signing secret or keyring
	ErrNoSecret = errors.New("session.no_secret")

	// ErrNotFound indicates the store holds no record for the requested id
	ErrNotFound = errors.New("session.not_found")

	// ErrIDGeneration indicates session id generation failed
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrNoSession indicates no session context is attached to the request
	ErrNoSession = errors.New("session.no_session")

	// ErrInvalidRecord indicates a store was asked to persist a nil record
	// or an empty id
	ErrInvalidRecord = errors.New("session.invalid_record")
)
