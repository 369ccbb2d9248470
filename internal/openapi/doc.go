// Package openapi loads the Swagger 2.0 document that describes the API and
// answers the questions the rest of the service asks of it: which query
// parameters an operation declares, which type and attribute set a resource
// definition has, and which pagination defaults apply.
//
// The document is embedded in the binary; LoadFile allows an override.
package openapi
