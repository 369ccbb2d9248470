// Package jsonapi holds the JSON:API document model shared by the HTTP layer
// and the serializers: resource and error documents, link and meta objects,
// and the paginator used to slice collections into pages.
//
// The package has no dependencies on other internal packages.
package jsonapi
