package api

import (
	"errors"
	"net/http"

	"github.com/osu-mist/game-curator-api/internal/api/shared"
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/store"
)

// NotFoundDetail is the detail of a 404 for the named resource.
func NotFoundDetail(resource string) string {
	return "A " + resource + " with the specified ID was not found."
}

// MapError maps internal errors to a JSON:API error document. The second
// result is false for errors that have no client-facing meaning; those go
// through HandleError.
func MapError(err error, resource string) (jsonapi.ErrorDocument, bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return jsonapi.BadRequest(verr.Details...), true

	case errors.Is(err, domain.ErrEmptyPatch):
		return jsonapi.BadRequest("attributes must contain at least one attribute to update"), true

	case errors.Is(err, domain.ErrInvalidDate):
		return jsonapi.BadRequest("date must be a date in YYYY-MM-DD format"), true

	case errors.Is(err, shared.ErrTypeMismatch):
		return jsonapi.Conflict("data.type must be " + resource), true

	case errors.Is(err, store.ErrIntegrity):
		return jsonapi.ErrorDocument{}, false

	case errors.Is(err, store.ErrNotFound):
		return jsonapi.NotFound(NotFoundDetail(resource)), true

	case errors.Is(err, store.ErrConflict):
		return jsonapi.Conflict("The " + resource + " is still referenced by other resources."), true

	case errors.Is(err, store.ErrInvalidEntity):
		return jsonapi.BadRequest("The " + resource + " attributes are not valid."), true

	default:
		return jsonapi.ErrorDocument{}, false
	}
}

// RespondWithMappedError writes the client-facing document for err, or a
// generic 500 through HandleError.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	if doc, ok := MapError(err, resource); ok {
		shared.RespondWithErrorAndLog(w, r, doc, err)
		return
	}
	HandleError(w, r, err)
}

// HandleError is the sink for unexpected failures. The redacted error and the
// trace id are logged at ERROR; the client only sees the generic detail.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		jsonapi.InternalServerError(jsonapi.UnexpectedConditionDetail), err)
}

var errNoDocument = errors.New("service returned no document")
