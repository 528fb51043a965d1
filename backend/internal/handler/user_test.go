package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := &Handler{user: &MockUserService{
			MockRegister: func(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
				assert.Equal(t, "dicoding", payload["username"])
				return domain.RegisteredUser{Id: "user-1", Username: "dicoding", Fullname: "Dicoding Indonesia"}, nil
			},
		}}

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":"dicoding","password":"secret","fullname":"Dicoding Indonesia"}`))
		h.Register(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		added := decodeEnvelope(t, rr)["data"].(map[string]any)["addedUser"].(map[string]any)
		assert.Equal(t, "user-1", added["id"])
		assert.NotContains(t, added, "password")
	})

	t.Run("username taken", func(t *testing.T) {
		h := &Handler{user: &MockUserService{
			MockRegister: func(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
				return domain.RegisteredUser{}, internal_errors.BadRequest("username tidak tersedia")
			},
		}}

		rr := httptest.NewRecorder()
		h.Register(rr, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "username tidak tersedia", decodeEnvelope(t, rr)["message"])
	})
}
