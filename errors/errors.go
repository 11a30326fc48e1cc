package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
)

// ErrInvalidRates is returned when a supplied rate rule set fails
// validation. The caller's prior registration, if any, is left unchanged.
var ErrInvalidRates = errors.New("invalid rate rules")

// ErrInvalidServerRegion is returned when a region code is not in the
// supported region table.
var ErrInvalidServerRegion = errors.New("invalid server region")

type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// RiotStatusMessage holds the status.message field of the Riot error
	// envelope when the response body carried one.
	RiotStatusMessage string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to the LoL API failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&cass_errors.ApiError{}), &cass_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}
