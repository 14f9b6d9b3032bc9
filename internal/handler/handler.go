// Package handler is the HTTP layer, the first entry point for business
// logic after the router.
//
// It binds and validates request payloads using the validation package,
// calls the appropriate service, and shapes the response. Error mapping is
// left to the global error handler.
package handler
