package domain

import (
	"regexp"

	"github.com/itchan-dev/forumapi/shared/errors"
)

const MaxUsernameLen = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

type User struct {
	Id       UserId
	Username Username
	PassHash string
	Fullname Fullname
}

// RegisterUser is a validated sign-up request.
type RegisterUser struct {
	Username Username
	Password Password
	Fullname Fullname
}

func NewRegisterUser(payload Payload) (RegisterUser, error) {
	if err := requireStrings(errors.EntityRegisterUser, payload, "username", "password", "fullname"); err != nil {
		return RegisterUser{}, err
	}
	username := payload["username"].(string)
	if len(username) > MaxUsernameLen {
		return RegisterUser{}, errors.NewDomainError(errors.EntityRegisterUser, errors.UsernameLimitChar)
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, errors.NewDomainError(errors.EntityRegisterUser, errors.UsernameRestrictedCharacter)
	}
	return RegisterUser{
		Username: username,
		Password: payload["password"].(string),
		Fullname: payload["fullname"].(string),
	}, nil
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname Fullname `json:"fullname"`
}
