package jsonapi

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildError(t *testing.T) {
	t.Parallel()

	obj := BuildError(http.StatusNotFound, "Not found", CodeNotFound, "nothing here")

	assert.Equal(t, "404", obj.Status)
	assert.Equal(t, "Not found", obj.Title)
	assert.Equal(t, "1404", obj.Code)
	assert.Equal(t, "nothing here", obj.Detail)
	assert.Equal(t,
		"https://developer.oregonstate.edu/documentation/error-reference#1404",
		obj.Links.About)
}

func TestBadRequest_OneObjectPerDetail(t *testing.T) {
	t.Parallel()

	doc := BadRequest("name is required", "website is required")

	require.Len(t, doc.Errors, 2)
	assert.Equal(t, "name is required", doc.Errors[0].Detail)
	assert.Equal(t, "website is required", doc.Errors[1].Detail)
	for _, obj := range doc.Errors {
		assert.Equal(t, "400", obj.Status)
		assert.Equal(t, "Bad Request", obj.Title)
		assert.Equal(t, CodeBadRequest, obj.Code)
	}
	assert.Equal(t, http.StatusBadRequest, doc.Status())
}

func TestErrorCatalogue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    ErrorDocument
		status int
		title  string
		code   string
		detail string
	}{
		{"unauthorized", Unauthorized(), 401, "Unauthorized", "1401", "Unauthorized"},
		{"forbidden", Forbidden("no"), 403, "Forbidden", "1403", "no"},
		{"not found", NotFound("gone"), 404, "Not found", "1404", "gone"},
		{"method not allowed", MethodNotAllowed("no PUT"), 405, "Method Not Allowed", "1405", "no PUT"},
		{"conflict", Conflict("clash"), 409, "Conflict", "1409", "clash"},
		{"too many requests", TooManyRequests("slow down"), 429, "Too Many Requests", "1429", "slow down"},
		{
			"internal server error",
			InternalServerError(UnexpectedConditionDetail),
			500,
			"Internal Server Error",
			"1500",
			"The application encountered an unexpected condition.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Len(t, tt.doc.Errors, 1)
			obj := tt.doc.Errors[0]
			assert.Equal(t, tt.status, tt.doc.Status())
			assert.Equal(t, tt.title, obj.Title)
			assert.Equal(t, tt.code, obj.Code)
			assert.Equal(t, tt.detail, obj.Detail)
			assert.Equal(t, ErrorReferenceURL+tt.code, obj.Links.About)
		})
	}
}

func TestErrorDocument_StatusOfEmptyDocument(t *testing.T) {
	t.Parallel()
	assert.Equal(t, http.StatusInternalServerError, ErrorDocument{}.Status())
}

func TestErrorDocument_WireShape(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(NotFound("A game with the specified ID was not found."))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"errors": [{
			"status": "404",
			"title": "Not found",
			"code": "1404",
			"detail": "A game with the specified ID was not found.",
			"links": {"about": "https://developer.oregonstate.edu/documentation/error-reference#1404"}
		}]
	}`, string(body))
}
