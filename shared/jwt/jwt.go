package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	"github.com/itchan-dev/forumapi/shared/logger"
)

type JwtService interface {
	NewAccessToken(owner domain.TokenOwner) (domain.AccessToken, error)
	NewRefreshToken(owner domain.TokenOwner) (domain.RefreshToken, error)
	DecodeAccessToken(token string) (domain.TokenOwner, error)
	VerifyRefreshToken(token string) (domain.TokenOwner, error)
}

type Jwt struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
}

func New(accessKey, refreshKey string, accessTTL time.Duration) *Jwt {
	return &Jwt{accessKey, refreshKey, accessTTL}
}

func (j *Jwt) NewAccessToken(owner domain.TokenOwner) (domain.AccessToken, error) {
	claims := baseClaims(owner)
	claims["exp"] = time.Now().Add(j.accessTTL).Unix()
	return sign(claims, j.accessKey)
}

// NewRefreshToken issues a token without expiry; it stays usable until it is
// deleted from storage on logout.
func (j *Jwt) NewRefreshToken(owner domain.TokenOwner) (domain.RefreshToken, error) {
	return sign(baseClaims(owner), j.refreshKey)
}

func (j *Jwt) DecodeAccessToken(token string) (domain.TokenOwner, error) {
	owner, err := decode(token, j.accessKey)
	if err != nil {
		logger.Log.Debug("access token rejected", "error", err)
		return domain.TokenOwner{}, internal_errors.Unauthorized("Invalid token")
	}
	return owner, nil
}

func (j *Jwt) VerifyRefreshToken(token string) (domain.TokenOwner, error) {
	owner, err := decode(token, j.refreshKey)
	if err != nil {
		logger.Log.Debug("refresh token rejected", "error", err)
		return domain.TokenOwner{}, internal_errors.BadRequest("refresh token tidak valid")
	}
	return owner, nil
}

func baseClaims(owner domain.TokenOwner) jwt.MapClaims {
	return jwt.MapClaims{
		"id":       owner.Id,
		"username": owner.Username,
		"iat":      time.Now().Unix(),
		"jti":      uuid.NewString(),
	}
}

func sign(claims jwt.MapClaims, key string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("can't sign token: %w", err)
	}
	return tokenString, nil
}

func decode(tokenString, key string) (domain.TokenOwner, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(key), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.TokenOwner{}, err
	}
	if !token.Valid {
		return domain.TokenOwner{}, fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.TokenOwner{}, fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return domain.TokenOwner{}, fmt.Errorf("claim id is missing")
	}
	username, _ := claims["username"].(string)
	return domain.TokenOwner{Id: id, Username: username}, nil
}
