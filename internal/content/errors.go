package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeTransport = "CONTENT_TRANSPORT_FAILED"
	TextCodeStatus    = "CONTENT_STATUS_ERROR"
	TextCodeDecode    = "CONTENT_DECODE_FAILED"
	TextCodeQuery     = "CONTENT_QUERY_FAILED"
)

// StatusError reports a non-success HTTP response from a content source.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	text := e.Status
	if text == "" {
		text = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("content api error: %d %s", e.StatusCode, text)
}

// WrapTransport tags a network failure. Context cancellation is returned unchanged.
func WrapTransport(err error, operation string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, operation+": request failed").
		WithTextCode(TextCodeTransport)
}

// NewStatusError builds the categorized error for a non-2xx response.
func NewStatusError(code int, statusText, operation string) error {
	cause := &StatusError{StatusCode: code, Status: statusText}
	return goerrors.Wrap(cause, goerrors.CategoryExternal, operation+": "+cause.Error()).
		WithCode(code).
		WithTextCode(TextCodeStatus)
}

// WrapDecode tags a malformed response body.
func WrapDecode(err error, operation string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, operation+": decode response").
		WithTextCode(TextCodeDecode)
}

// WrapQuery tags a failure reported by the graph query endpoint.
func WrapQuery(err error, operation string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, operation+": query failed").
		WithTextCode(TextCodeQuery)
}

// IsSourceError reports whether err was raised by a content source.
func IsSourceError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryExternal)
}
