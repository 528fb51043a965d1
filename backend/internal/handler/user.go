package handler

import (
	"net/http"

	"github.com/itchan-dev/forumapi/shared/api"
	"github.com/itchan-dev/forumapi/shared/logger"
	"github.com/itchan-dev/forumapi/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.user.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	logger.Log.Info("user registered", "user_id", added.Id, "username", added.Username)

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddUserResponse{AddedUser: added}))
}
