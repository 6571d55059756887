package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"bad input", New(BadInput, "quantity must be at least 1"), BadInput},
		{"not found", New(NotFound, "cart not found"), NotFound},
		{"conflict", New(Conflict, "email is already registered"), Conflict},
		{"upstream", Wrap(UpstreamFailure, "db write failed", errors.New("timeout")), UpstreamFailure},
		{"plain error defaults to internal", errors.New("boom"), Internal},
		{"nil defaults to internal", nil, Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOfWrappedChain(t *testing.T) {
	inner := New(NotFound, "order not found")
	outer := fmt.Errorf("loading order: %w", inner)
	assert.Equal(t, NotFound, KindOf(outer))
	assert.True(t, IsKind(outer, NotFound))
	assert.False(t, IsKind(nil, NotFound))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(UpstreamFailure, "error occurred while processing the payment", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upstream_failure")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMessageHidesInternals(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("pq: relation does not exist")))
	assert.Equal(t, "internal server error", Message(Wrap(Internal, "secret detail", errors.New("boom"))))
	assert.Equal(t, "cart not found", Message(New(NotFound, "cart not found")))
	assert.Equal(t, "internal server error", Message(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadInput))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(UpstreamFailure))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bad_input", BadInput.String())
	assert.Equal(t, "internal", Internal.String())
	assert.Equal(t, "upstream_failure", UpstreamFailure.String())
}
