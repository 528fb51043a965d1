package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/itchan-dev/forumapi/shared/api"
	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	"github.com/itchan-dev/forumapi/shared/logger"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

// MaxBodySize caps JSON request bodies.
const MaxBodySize = 1 << 20

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		body, _ = json.Marshal(api.Envelope{Status: api.StatusError, Message: internalErrorMessage})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

// WriteErrorAndStatusCode writes err as a fail envelope with its status code.
// Domain validation errors become 400 with a localized message; errors that
// carry no status are logged and hidden behind a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	err = internal_errors.Translate(err)

	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) && e.StatusCode < http.StatusInternalServerError {
		WriteJSON(w, e.StatusCode, api.Envelope{Status: api.StatusFail, Message: e.Message})
		return
	}

	logger.Log.Error("request failed", "error", err)
	// default error is 500
	WriteJSON(w, http.StatusInternalServerError, api.Envelope{Status: api.StatusError, Message: internalErrorMessage})
}

// DecodePayload reads a JSON object from r without assuming anything about
// its fields. An empty body yields an empty payload.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	dec := json.NewDecoder(r)
	var payload domain.Payload
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		logger.Log.Debug("failed to decode payload", "error", err)
		return nil, internal_errors.BadRequest("body is invalid json")
	}
	// the body must hold exactly one value
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		logger.Log.Debug("trailing data after payload", "error", err)
		return nil, internal_errors.BadRequest("body is invalid json")
	}
	if payload == nil {
		// literal null
		return domain.Payload{}, nil
	}
	return payload, nil
}
