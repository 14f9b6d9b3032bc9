// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// authentication (bearer-token verification), request logging, CORS,
// request-scoped logger enrichment, and panic recovery.
package middleware
