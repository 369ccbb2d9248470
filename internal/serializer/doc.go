// Package serializer turns store rows into JSON:API documents.
//
// Resource types and attribute sets come from the OpenAPI schema, so a
// serializer never emits an attribute the schema does not declare. Scores are
// converted from their NUMERIC text form to numbers and dates are rendered in
// the layout each resource publishes.
package serializer
