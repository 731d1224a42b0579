package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NewError(KindRoomNotFound, "no room exists for id %s", "room-1")
	assert.Equal(t, KindRoomNotFound, KindOf(err))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, KindRoomNotFound, KindOf(wrapped))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestWrapError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(KindStoreUnavailable, cause, "mongo query failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store_unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		client bool
	}{
		{KindInvalidMembership, true},
		{KindRoomNotFound, true},
		{KindNotAMember, true},
		{KindValidation, true},
		{KindStoreUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.client, IsClientError(NewError(tt.kind, "boom")))
		})
	}

	assert.False(t, IsClientError(errors.New("unexpected")))
}
