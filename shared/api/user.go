package api

import "github.com/itchan-dev/forumapi/shared/domain"

type AddUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}
