package api

import "github.com/itchan-dev/forumapi/shared/domain"

type LoginResponse = domain.NewAuth

type RefreshResponse struct {
	AccessToken domain.AccessToken `json:"accessToken"`
}
