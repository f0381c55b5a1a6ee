package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	cloned := Clone(ErrNotFound, "event not found")
	assert.True(t, errors.Is(cloned, ErrNotFound))
	assert.False(t, errors.Is(cloned, ErrValidation))

	wrapped := fmt.Errorf("load: %w", WrapAs(ErrStorage, errors.New("dial tcp"), ""))
	assert.True(t, errors.Is(wrapped, ErrStorage))
	assert.Equal(t, "storage unavailable: dial tcp", FromError(wrapped).Error())
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Nil(t, FromError(nil))
}
