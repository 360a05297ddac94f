package constants

// Keys stored in fiber Locals by the middleware chain.
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocRequestID = "request_id"
)
