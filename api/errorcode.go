package api

import (
	"github.com/spatialhub/geodata-api/records"
	"github.com/spatialhub/geodata-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid id format",
		1013: "invalid payload fields",

		1100: store.ErrLocationTaken.Error(),
		1101: store.ErrPointNotFound.Error(),
		1102: store.ErrPolygonNotFound.Error(),

		1200: "geolocation service error",
		1201: "location not found",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidID          = errorJSON(1012)

	errorLocationTaken   = errorJSON(1100)
	errorPointNotFound   = errorJSON(1101)
	errorPolygonNotFound = errorJSON(1102)

	errorGeoService          = errorJSON(1200)
	errorLocationNotResolved = errorJSON(1201)
)

type ErrorResponse struct {
	Code             int64                `json:"code"`
	Message          string               `json:"message"`
	ValidationErrors []records.FieldError `json:"validation_errors,omitempty"`
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

// validationErrorJSON attaches the full offending-field list to the
// validation error object
func validationErrorJSON(verr *records.ValidationError) ErrorResponse {
	resp := errorJSON(1013)
	resp.ValidationErrors = verr.Fields
	return resp
}
