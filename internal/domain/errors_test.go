package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"quotehub/internal/domain"
	"quotehub/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection refused")
	err := fmt.Errorf("gail.Quote: %w", domain.WrapError(cause, errcodes.VendorUnavailable, "vendor request failed"))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "gail.Quote: vendor request failed: connection refused")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.VendorUnavailable, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)

	rq.EqualError(domain.NewError(errcodes.VendorNotConfigured, "no credentials"), "no credentials")
}
