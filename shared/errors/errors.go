package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Kind classifies a payload validation failure raised by a domain entity.
type Kind int

const (
	MissingRequiredProperty Kind = iota + 1
	InvalidPropertyType
	UsernameLimitChar
	UsernameRestrictedCharacter
)

func (k Kind) String() string {
	switch k {
	case MissingRequiredProperty:
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	case InvalidPropertyType:
		return "NOT_MEET_DATA_TYPE_SPECIFICATION"
	case UsernameLimitChar:
		return "USERNAME_LIMIT_CHAR"
	case UsernameRestrictedCharacter:
		return "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
	default:
		return "UNKNOWN"
	}
}

// Entities that raise DomainError
const (
	EntityPostThread            = "POST_THREAD"
	EntityRegisterUser          = "REGISTER_USER"
	EntityUserLogin             = "USER_LOGIN"
	EntityRefreshAuthentication = "REFRESH_AUTHENTICATION_USE_CASE"
	EntityDeleteAuthentication  = "DELETE_AUTHENTICATION_USE_CASE"
)

// DomainError carries the entity that rejected a payload and the reason.
// It holds no user-facing text: the boundary picks the message with Translate.
type DomainError struct {
	Entity string
	Kind   Kind
}

func (e *DomainError) Error() string {
	return e.Entity + "." + e.Kind.String()
}

func NewDomainError(entity string, kind Kind) *DomainError {
	return &DomainError{Entity: entity, Kind: kind}
}

// KindOf reports the Kind of the first DomainError in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

type translationKey struct {
	entity string
	kind   Kind
}

var translations = map[translationKey]string{
	{EntityPostThread, MissingRequiredProperty}:            "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	{EntityPostThread, InvalidPropertyType}:                "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	{EntityRegisterUser, MissingRequiredProperty}:          "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	{EntityRegisterUser, InvalidPropertyType}:              "tidak dapat membuat user baru karena tipe data tidak sesuai",
	{EntityRegisterUser, UsernameLimitChar}:                "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	{EntityRegisterUser, UsernameRestrictedCharacter}:      "tidak dapat membuat user baru karena username mengandung karakter terlarang",
	{EntityUserLogin, MissingRequiredProperty}:             "harus mengirimkan username dan password",
	{EntityUserLogin, InvalidPropertyType}:                 "username dan password harus string",
	{EntityRefreshAuthentication, MissingRequiredProperty}: "harus mengirimkan token refresh",
	{EntityRefreshAuthentication, InvalidPropertyType}:     "refresh token harus string",
	{EntityDeleteAuthentication, MissingRequiredProperty}:  "harus mengirimkan token refresh",
	{EntityDeleteAuthentication, InvalidPropertyType}:      "refresh token harus string",
}

// Translate turns a DomainError into a client error with a localized message.
// Any other error is returned unchanged.
func Translate(err error) error {
	var de *DomainError
	if !errors.As(err, &de) {
		return err
	}
	msg, ok := translations[translationKey{de.Entity, de.Kind}]
	if !ok {
		msg = de.Error()
	}
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

// Common client errors
func BadRequest(msg string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

func Unauthorized(msg string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusUnauthorized}
}

func NotFound(msg string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotFound}
}

// StatusCode returns the client status carried by err, or 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
