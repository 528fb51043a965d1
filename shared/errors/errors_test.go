package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError(EntityPostThread, MissingRequiredProperty)
	assert.Equal(t, "POST_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", err.Error())

	wrapped := fmt.Errorf("add thread: %w", err)
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, MissingRequiredProperty, kind)

	_, ok = KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "thread missing property",
			err:     NewDomainError(EntityPostThread, MissingRequiredProperty),
			message: "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
		},
		{
			name:    "thread wrong type",
			err:     NewDomainError(EntityPostThread, InvalidPropertyType),
			message: "tidak dapat membuat thread baru karena tipe data tidak sesuai",
		},
		{
			name:    "username too long",
			err:     NewDomainError(EntityRegisterUser, UsernameLimitChar),
			message: "tidak dapat membuat user baru karena karakter username melebihi batas limit",
		},
		{
			name:    "unmapped pair falls back to code",
			err:     NewDomainError(EntityPostThread, UsernameLimitChar),
			message: "POST_THREAD.USERNAME_LIMIT_CHAR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := Translate(tt.err)
			var e *ErrorWithStatusCode
			require.True(t, errors.As(translated, &e))
			assert.Equal(t, http.StatusBadRequest, e.StatusCode)
			assert.Equal(t, tt.message, e.Message)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("connection refused")
		assert.Same(t, plain, Translate(plain))
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("user tidak ditemukan")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(fmt.Errorf("login: %w", Unauthorized("x"))))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}
