package jsonapi

import (
	"net/http"
	"strconv"
)

// ErrorReferenceURL is the base of every error object's links.about member.
// The application error code is appended as the fragment.
const ErrorReferenceURL = "https://developer.oregonstate.edu/documentation/error-reference#"

// UnexpectedConditionDetail is the only detail ever sent with a 500 response.
const UnexpectedConditionDetail = "The application encountered an unexpected condition."

// Application error codes, one per HTTP status the API produces.
const (
	CodeBadRequest          = "1400"
	CodeUnauthorized        = "1401"
	CodeForbidden           = "1403"
	CodeNotFound            = "1404"
	CodeMethodNotAllowed    = "1405"
	CodeConflict            = "1409"
	CodeTooManyRequests     = "1429"
	CodeInternalServerError = "1500"
)

// ErrorLinks holds the links member of an error object.
type ErrorLinks struct {
	About string `json:"about"`
}

// ErrorObject is a single JSON:API error object.
type ErrorObject struct {
	Status string     `json:"status"`
	Title  string     `json:"title"`
	Code   string     `json:"code"`
	Detail string     `json:"detail"`
	Links  ErrorLinks `json:"links"`
}

// ErrorDocument is a top-level JSON:API error document.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// Status returns the HTTP status of the document, taken from its first error
// object. An empty document reports 500.
func (d ErrorDocument) Status() int {
	if len(d.Errors) == 0 {
		return http.StatusInternalServerError
	}
	status, err := strconv.Atoi(d.Errors[0].Status)
	if err != nil {
		return http.StatusInternalServerError
	}
	return status
}

// BuildError constructs an error object with its reference link.
func BuildError(status int, title, code, detail string) ErrorObject {
	return ErrorObject{
		Status: strconv.Itoa(status),
		Title:  title,
		Code:   code,
		Detail: detail,
		Links:  ErrorLinks{About: ErrorReferenceURL + code},
	}
}

func single(obj ErrorObject) ErrorDocument {
	return ErrorDocument{Errors: []ErrorObject{obj}}
}

// BadRequest returns a 400 document with one error object per detail.
func BadRequest(details ...string) ErrorDocument {
	doc := ErrorDocument{Errors: make([]ErrorObject, 0, len(details))}
	for _, detail := range details {
		doc.Errors = append(doc.Errors,
			BuildError(http.StatusBadRequest, "Bad Request", CodeBadRequest, detail))
	}
	return doc
}

// Unauthorized returns a 401 document.
func Unauthorized() ErrorDocument {
	return single(BuildError(http.StatusUnauthorized, "Unauthorized", CodeUnauthorized, "Unauthorized"))
}

// Forbidden returns a 403 document.
func Forbidden(detail string) ErrorDocument {
	return single(BuildError(http.StatusForbidden, "Forbidden", CodeForbidden, detail))
}

// NotFound returns a 404 document.
func NotFound(detail string) ErrorDocument {
	return single(BuildError(http.StatusNotFound, "Not found", CodeNotFound, detail))
}

// MethodNotAllowed returns a 405 document.
func MethodNotAllowed(detail string) ErrorDocument {
	return single(BuildError(http.StatusMethodNotAllowed, "Method Not Allowed", CodeMethodNotAllowed, detail))
}

// Conflict returns a 409 document.
func Conflict(detail string) ErrorDocument {
	return single(BuildError(http.StatusConflict, "Conflict", CodeConflict, detail))
}

// TooManyRequests returns a 429 document.
func TooManyRequests(detail string) ErrorDocument {
	return single(BuildError(http.StatusTooManyRequests, "Too Many Requests", CodeTooManyRequests, detail))
}

// InternalServerError returns a 500 document.
func InternalServerError(detail string) ErrorDocument {
	return single(BuildError(
		http.StatusInternalServerError,
		"Internal Server Error",
		CodeInternalServerError,
		detail,
	))
}
