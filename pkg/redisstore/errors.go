package redisstore

import "errors"

var (
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady           = errors.New("redis did not become ready within the given time period")
	ErrStoreUnavailable        = errors.New("redis store unavailable")
	ErrFailedToEncodeRecord    = errors.New("failed to encode session record")
	ErrFailedToDecodeRecord    = errors.New("failed to decode session record")
	ErrHealthcheckFailed       = errors.New("redis healthcheck failed")
)
