package utils

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPrefixedIdGenerator(t *testing.T) {
	gen := NewIdGenerator("thread")

	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Regexp(t, `^thread-[0-9a-f]{32}$`, id)

	t.Run("unique under concurrency", func(t *testing.T) {
		const n = 1000
		var mu sync.Mutex
		seen := make(map[string]struct{}, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := gen.Generate()
				assert.NoError(t, err)
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Len(t, seen, n)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	require.NoError(t, h.Compare("secret", hash))

	err = h.Compare("wrong", hash)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
	assert.EqualError(t, err, "kredensial yang Anda masukkan salah")

	err = h.Compare("secret", "not a bcrypt hash")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, internal_errors.StatusCode(err))

	t.Run("password over 72 bytes is a client error", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("a", 73))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
		assert.EqualError(t, err, "password tidak boleh lebih dari 72 byte")

		_, err = h.Hash(strings.Repeat("a", 72))
		assert.NoError(t, err)
	})
}
