// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable; dashboard clients branch on them.
// Generic codes mirror HTTP status semantics. query_failed and timeout are
// specific to store access.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "timeout",
//	  "message": "query timed out"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnavailable      = "unavailable"

	// Written by middleware, listed for clients:
	ErrCodeRateLimited = "rate_limited"
	ErrCodeInternal    = "internal_error"

	// Store access:
	ErrCodeQueryFailed = "query_failed"
	ErrCodeTimeout     = "timeout"
)
