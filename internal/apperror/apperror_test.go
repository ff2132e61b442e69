package apperror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"validation", Validation("vendor_id is required"), CodeValidation},
		{"duplicate", Duplicate("item %s already exists", "SKU1"), CodeDuplicate},
		{"not found", NotFound("bill", 7), CodeNotFound},
		{"raw", errors.New("disk I/O error"), CodeStore},
		{"wrapped typed", errors.Wrap(NotFound("purchase", 3), "load purchase"), CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestStoreKeepsRawMessage(t *testing.T) {
	raw := errors.New("FOREIGN KEY constraint failed")
	err := Store(raw)

	assert.Equal(t, CodeStore, CodeOf(err))
	assert.Equal(t, "FOREIGN KEY constraint failed", err.Error())
	assert.True(t, errors.Is(err, raw))
	assert.Nil(t, Store(nil))

	typed := Validation("name is required")
	assert.Same(t, typed, Store(typed))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("bill", 42)
	assert.Equal(t, "bill 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}
