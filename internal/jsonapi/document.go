package jsonapi

// MediaType is the JSON:API content type used for every response body.
const MediaType = "application/vnd.api+json"

// Links holds the link members of a document or a resource object.
// Pagination links are only populated on collection documents.
type Links struct {
	Self  string `json:"self,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// Meta carries pagination information for collection documents.
type Meta struct {
	TotalResults      int `json:"totalResults"`
	TotalPages        int `json:"totalPages"`
	CurrentPageNumber int `json:"currentPageNumber"`
	CurrentPageSize   int `json:"currentPageSize"`
}

// Resource is a single JSON:API resource object.
type Resource struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
	Links      *Links         `json:"links,omitempty"`
}

// Document is a top-level JSON:API document. Data is either a *Resource
// or a []Resource.
type Document struct {
	Links *Links `json:"links,omitempty"`
	Meta  *Meta  `json:"meta,omitempty"`
	Data  any    `json:"data"`
}

// Single returns the resource of a single-resource document.
func (d *Document) Single() (*Resource, bool) {
	if d == nil {
		return nil, false
	}
	r, ok := d.Data.(*Resource)
	return r, ok && r != nil
}

// Collection returns the resources of a collection document.
func (d *Document) Collection() ([]Resource, bool) {
	if d == nil {
		return nil, false
	}
	rs, ok := d.Data.([]Resource)
	return rs, ok
}

// RequestResource is the resource object of a create or update request body.
// A is the attribute struct of the resource being written.
type RequestResource[A any] struct {
	ID         string `json:"id,omitempty"`
	Type       string `json:"type"`
	Attributes A      `json:"attributes"`
}

// RequestDocument is the body of a POST or PATCH request.
type RequestDocument[A any] struct {
	Data *RequestResource[A] `json:"data"`
}
