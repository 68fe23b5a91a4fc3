package errors

import "net/http"

// IsRetryableHTTPStatus reports whether an upstream status is worth retrying.
// Every non-2xx status is, except 401 which means the key was rejected.
func IsRetryableHTTPStatus(statusCode int) bool {
	switch {
	case statusCode == http.StatusUnauthorized:
		return false
	case statusCode >= 200 && statusCode < 300:
		return false
	default:
		return true
	}
}
