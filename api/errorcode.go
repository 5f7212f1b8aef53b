package api

import "github.com/greenepidemic/greenepidemic-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid email or password",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "access denied",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this email has already been registered",
		1101: "account not found",

		1200: store.ErrReportNotFound.Error(),
		1201: "invalid report category",
		1202: "invalid moderation action",

		1300: store.ErrSurveillancePointNotFound.Error(),

		1400: store.ErrConsultationNotFound.Error(),
		1401: store.ErrConsultationFinalized.Error(),

		1500: store.ErrAssessmentNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorForbidden                  = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorReportNotFound        = errorJSON(1200)
	errorInvalidReportCategory = errorJSON(1201)
	errorInvalidModeration     = errorJSON(1202)

	errorUnknownSurveillancePoint = errorJSON(1300)

	errorConsultationNotFound  = errorJSON(1400)
	errorConsultationFinalized = errorJSON(1401)

	errorAssessmentNotFound = errorJSON(1500)
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
