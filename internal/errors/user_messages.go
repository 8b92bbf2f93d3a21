package errors

// User-friendly error messages
const (
	MsgPropertyNotFound   = "Property not found. Please try a different listing."
	MsgServiceUnavailable = "We're unable to retrieve property information right now. Please try again in a few minutes."
	MsgRateLimited        = "You're searching too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgUpstreamError      = "Our property data provider returned an error. Please try again later."
	MsgInvalidPayload     = "Our property data provider sent an unexpected response. Please try again later."
	MsgExportFailed       = "The property export could not be written."
	MsgListingNotFound    = "Listing not found!"
	MsgContentNotFound    = "The requested page could not be found."
	MsgUnauthorized       = "You can only modify your own listings!"
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
