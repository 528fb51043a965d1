package api

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every JSON response the API produces itself.
// Data is set on success, Message on failure.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// UnauthorizedResponse is written by the auth middleware before any handler runs.
type UnauthorizedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
