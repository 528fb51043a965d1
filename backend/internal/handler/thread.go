package handler

import (
	"net/http"

	"github.com/itchan-dev/forumapi/shared/api"
	"github.com/itchan-dev/forumapi/shared/logger"
	mw "github.com/itchan-dev/forumapi/shared/middleware"
	"github.com/itchan-dev/forumapi/shared/middleware/metrics"
	"github.com/itchan-dev/forumapi/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		// NeedAuth guards the route, reaching here is a wiring bug
		logger.Log.Error("create thread called without authenticated user")
		utils.WriteErrorAndStatusCode(w, errNoUser)
		return
	}

	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Add(r.Context(), payload, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.ThreadsCreated.Inc()
	logger.Log.Info("thread created", "thread_id", added.Id, "owner", added.Owner)

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddThreadResponse{AddedThread: added}))
}
