package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/itchan-dev/forumapi/backend/internal/service"
	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	"github.com/itchan-dev/forumapi/shared/middleware/metrics"
	"github.com/itchan-dev/forumapi/shared/utils"
)

var errNoUser = errors.New("authenticated user missing from request context")

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread service.ThreadService
	user   service.UserService
	auth   service.AuthService
	health HealthChecker
}

func New(thread service.ThreadService, user service.UserService, auth service.AuthService, health HealthChecker) *Handler {
	return &Handler{
		thread: thread,
		user:   user,
		auth:   auth,
		health: health,
	}
}

// decodeBody reads the request body as a loosely typed payload so domain
// entities can tell missing properties from mistyped ones.
func decodeBody(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxBodySize)
	return utils.DecodePayload(r.Body)
}

// writeError records domain rejections before writing the error response.
func writeError(w http.ResponseWriter, err error) {
	var de *internal_errors.DomainError
	if errors.As(err, &de) {
		metrics.PayloadRejections.WithLabelValues(de.Entity, de.Kind.String()).Inc()
	}
	utils.WriteErrorAndStatusCode(w, err)
}
