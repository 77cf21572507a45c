package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrMissingIdentifier marks an available ENI that came back without an ID
var ErrMissingIdentifier = errors.New("available ENI has no network interface ID")

// APIError is a failed EC2 call, tagged with the operation and resource
type APIError struct {
	Op  string
	ID  string
	Err error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.ID != "" {
		fmt.Fprintf(&b, " %s", e.ID)
	}
	if code := e.Code(); code != "" {
		fmt.Fprintf(&b, " [%s]", code)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Code returns the AWS error code, or "" when the cause carries none
func (e *APIError) Code() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
