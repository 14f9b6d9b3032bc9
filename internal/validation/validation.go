// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (required fields, minimum
// lengths) defined in struct tags and extracts validation errors into
// field-level messages the client can act on. Every violation is reported,
// not just the first.
package validation
