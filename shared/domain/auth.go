package domain

import "github.com/itchan-dev/forumapi/shared/errors"

// Credentials is a validated login request.
type Credentials struct {
	Username Username
	Password Password
}

func NewCredentials(payload Payload) (Credentials, error) {
	if err := requireStrings(errors.EntityUserLogin, payload, "username", "password"); err != nil {
		return Credentials{}, err
	}
	return Credentials{
		Username: payload["username"].(string),
		Password: payload["password"].(string),
	}, nil
}

// NewAuth is issued on login.
type NewAuth struct {
	AccessToken  AccessToken  `json:"accessToken"`
	RefreshToken RefreshToken `json:"refreshToken"`
}

// TokenOwner is the identity carried inside access and refresh tokens.
type TokenOwner struct {
	Id       UserId
	Username Username
}

// RefreshTokenFrom extracts "refreshToken" from payload. entity tells which
// operation is asking so the error can be told apart at the boundary.
func RefreshTokenFrom(entity string, payload Payload) (RefreshToken, error) {
	if err := requireStrings(entity, payload, "refreshToken"); err != nil {
		return "", err
	}
	return payload["refreshToken"].(string), nil
}
