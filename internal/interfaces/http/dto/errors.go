package dto

import "net/http"

// StatusForCode maps domain error codes to HTTP status codes. Validation
// failures are the client's fault; everything touching configuration or the
// datastore is a 500 with a generic message.
func StatusForCode(code string) int {
	switch code {
	case "INVALID_EMAIL", "EMPTY_ITEMS", "MISSING_ADDRESS", "INVALID_CUSTOMER", "INVALID_INPUT":
		return http.StatusBadRequest
	case "NOT_FOUND", "PRODUCT_NOT_FOUND":
		return http.StatusNotFound
	case "SERVER_CONFIG", "CUSTOMER_WRITE_FAILED", "ORDER_WRITE_FAILED":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
