package api

import "github.com/aidconnect/aid-connect-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid location",

		1100: store.ErrEmailTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "invalid credentials",

		1200: store.ErrRequestNotFound.Error(),
		1201: "request rejected by content moderation",
		1202: "too many submissions, try again later",
		1203: "only the requester can refresh its matches",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidLocation    = errorJSON(1012)

	errorEmailTaken         = errorJSON(1100)
	errorUserNotFound       = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRequestNotFound = errorJSON(1200)
	errorRequestRejected = errorJSON(1201)
	errorTooManyRequests = errorJSON(1202)
	errorNotRequestOwner = errorJSON(1203)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
