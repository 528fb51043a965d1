package api

import (
	"github.com/itchan-dev/forumapi/shared/domain"
)

// Request body of POST /threads is decoded into domain.Payload; its shape is
// checked by domain.NewThread, not by struct tags.

type AddThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}
