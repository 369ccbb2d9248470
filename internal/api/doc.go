// Package api handles incoming HTTP requests for the developer, game and
// review resources. Handlers parse query strings against the OpenAPI schema,
// decode JSON:API request documents, call the services, and render JSON:API
// documents or error documents.
package api
