package domain

type (
	UserId   = string
	Username = string
	Password = string
	Fullname = string

	ThreadId    = string
	ThreadTitle = string
	ThreadBody  = string

	RefreshToken = string
	AccessToken  = string
)

// Payload is a decoded request body. Nothing about its shape is trusted until
// an entity constructor has checked it.
type Payload = map[string]any
