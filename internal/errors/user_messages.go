package errors

// User-friendly error messages
const (
	MsgNotFound           = "The requested item could not be found."
	MsgPropertyNotFound   = "Property not found. It may have been removed or unpublished."
	MsgServiceUnavailable = "We're unable to load listings right now. Please try again in a few minutes."
	MsgRateLimited        = "You're searching too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgUnauthorized       = "Please sign in to continue."
	MsgForbidden          = "You do not have permission to perform this action."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
