package mongostore

import "errors"

var (
	ErrFailedToConnect       = errors.New("failed to connect to mongo")
	ErrStoreUnavailable      = errors.New("mongo store unavailable")
	ErrFailedToCreateIndexes = errors.New("failed to create session indexes")
	ErrHealthcheckFailed     = errors.New("mongo healthcheck failed")
)
