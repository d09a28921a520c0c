package common

import (
	"fmt"
	"net/http"
)

// Error is a request error detected by the service layer. It carries the HTTP
// status and the message returned to the client. Kind is one of the Err*
// sentinels above, so errors.Is(err, ErrMissingField) works on wrapped values.
type Error struct {
	Kind     error
	Status   int
	Message  string
	Location string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// MissingField reports an absent or empty required body field.
func MissingField(field string) *Error {
	return &Error{
		Kind:    ErrMissingField,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Missing `%s` in request body", field),
	}
}

// InvalidID reports a malformed identifier in a path or query parameter.
func InvalidID(param string) *Error {
	return &Error{
		Kind:    ErrInvalidFormat,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("The `%s` is not valid", param),
	}
}

// InvalidFolderReference reports a malformed folderId. It shares the message of
// UnauthorizedFolderReference so callers cannot tell whether a folder exists.
func InvalidFolderReference() *Error {
	return &Error{
		Kind:    ErrInvalidReference,
		Status:  http.StatusBadRequest,
		Message: "The `folderId` is not valid",
	}
}

func UnauthorizedFolderReference() *Error {
	return &Error{
		Kind:    ErrUnauthorizedReference,
		Status:  http.StatusBadRequest,
		Message: "The `folderId` is not valid",
	}
}

func InvalidTagsType() *Error {
	return &Error{
		Kind:    ErrInvalidFormat,
		Status:  http.StatusBadRequest,
		Message: "The `tags` property must be an array",
	}
}

func InvalidTagReference() *Error {
	return &Error{
		Kind:    ErrInvalidReference,
		Status:  http.StatusBadRequest,
		Message: "The `tags` array contains an invalid `id`",
	}
}

func UnauthorizedTagReference() *Error {
	return &Error{
		Kind:    ErrUnauthorizedReference,
		Status:  http.StatusBadRequest,
		Message: "The `tags` array contains an invalid `id`",
	}
}

// DuplicateName reports a per-user name collision, e.g. "Folder name already exists".
func DuplicateName(entity string) *Error {
	return &Error{
		Kind:    ErrDuplicateName,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("%s name already exists", entity),
	}
}

// Validation reports a signup field error; location names the offending field.
func Validation(location, message string) *Error {
	return &Error{
		Kind:     ErrValidation,
		Status:   http.StatusUnprocessableEntity,
		Message:  message,
		Location: location,
	}
}

func DuplicateUsername() *Error {
	return &Error{
		Kind:     ErrDuplicateName,
		Status:   http.StatusUnprocessableEntity,
		Message:  "Username already taken",
		Location: "username",
	}
}

func InvalidCredentials() *Error {
	return &Error{
		Kind:    ErrInvalidCredentials,
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
	}
}

func Unauthenticated() *Error {
	return &Error{
		Kind:    ErrUnauthenticated,
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
	}
}

func NotFound() *Error {
	return &Error{
		Kind:    ErrorNotFound,
		Status:  http.StatusNotFound,
		Message: "Not Found",
	}
}

// BadRequest reports a request that could not be interpreted at all, such as
// a malformed JSON body or a login without credentials.
func BadRequest() *Error {
	return &Error{
		Kind:    ErrInvalidFormat,
		Status:  http.StatusBadRequest,
		Message: "Bad Request",
	}
}
