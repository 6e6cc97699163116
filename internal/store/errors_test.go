package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageErrorsWrapErrStorage(t *testing.T) {
	assert.ErrorIs(t, ErrEventCreate, ErrStorage)
	assert.ErrorIs(t, ErrEventFind, ErrStorage)
	assert.ErrorIs(t, ErrListItemFind, ErrStorage)
}

func TestIsStorageError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"event_create", ErrEventCreate, true},
		{"event_find", ErrEventFind, true},
		{"list_item_find", ErrListItemFind, true},
		{"connection", ErrConnection, true},
		{"wrapped_connection", fmt.Errorf("%w: Cobia", ErrConnection), true},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsStorageError(tc.err))
		})
	}
}

func TestStorageErrorMessagesAreFixedDomainMessages(t *testing.T) {
	// The client-facing messages never carry driver detail.
	assert.Contains(t, ErrEventCreate.Error(), "problem creating the event")
	assert.Contains(t, ErrEventFind.Error(), "problem finding the events")
	assert.Contains(t, ErrListItemFind.Error(), "problem finding the documents")
}
