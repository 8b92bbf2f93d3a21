package cache

import (
	"errors"
	"fmt"
)

var ErrNotConnected = errors.New("redis client is not connected")

// CacheError wraps a failed cache operation together with the key it touched.
type CacheError struct {
	Operation string
	Key       string
	Err       error
}

func NewCacheError(operation, key string, err error) *CacheError {
	return &CacheError{
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache operation %s on %s failed: %v", e.Operation, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
