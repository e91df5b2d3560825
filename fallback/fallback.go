// Package fallback substitutes bundled fixture data for a list call when the backend
// cannot be reached, so read-only screens stay usable offline.
package fallback

import (
	"context"

	"github.com/jrsteele09/temco-admin/apiclient"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of Fetch. Fallback reports that Data came from a fixture, in
// which case Err holds the failure that caused it.
type Result[T any] struct {
	Data     T
	Fallback bool
	Err      error
}

// Fetch runs call. When it fails because the backend is unavailable (a transport error
// or a 5xx response) the fixture is returned instead. Any other error, including 401s,
// 4xx responses and validation failures, is returned unchanged.
func Fetch[T any](ctx context.Context, call func(context.Context) (T, error), fixture func() T) (Result[T], error) {
	data, err := call(ctx)
	if err == nil {
		return Result[T]{Data: data}, nil
	}
	if !apiclient.IsUnavailable(err) {
		return Result[T]{}, err
	}

	log.Warn().Err(err).Msg("Backend unavailable, using fallback data")
	return Result[T]{Data: fixture(), Fallback: true, Err: err}, nil
}
