package handler

import (
	"net/http"

	"github.com/itchan-dev/forumapi/shared/api"
	"github.com/itchan-dev/forumapi/shared/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	tokens, err := h.auth.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.LoginResponse(tokens)))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Refresh(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.RefreshResponse{AccessToken: accessToken}))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.Logout(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Envelope{Status: api.StatusSuccess})
}
