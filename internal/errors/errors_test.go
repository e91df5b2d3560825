package errors_test

import (
	"fmt"
	"testing"

	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	require.NoError(t, errors.Wrapf(nil, "loading %s", "session"))

	err := errors.Wrapf(errors.ErrInvalidToken, "refresh for %s", "admin")
	require.EqualError(t, err, "refresh for admin: invalid token")
	require.True(t, errors.Is(err, errors.ErrInvalidToken))
}

type statusErr struct{ code int }

func (s *statusErr) Error() string { return fmt.Sprintf("status %d", s.code) }

func TestAs(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &statusErr{code: 503})

	var target *statusErr
	require.True(t, errors.As(err, &target))
	require.Equal(t, 503, target.code)
}
