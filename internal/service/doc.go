// Package service contains the data accessors of the API: one service per
// resource, each combining the query layer, a store and a serializer.
//
// Services take a parsed query.Query or validated domain input and return
// JSON:API documents, so handlers only decode requests and write responses.
// Writes that reference a parent resource check the parent through the
// parent's own service before touching the database; a missing parent is a
// *domain.ValidationError, never a constraint violation surfaced from SQL.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete store implementation.
package service
