package errors

// ErrorCode identifies error categories across API responses and logs.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003

	// Parsing
	ErrorCode_PARSE_NO_CONTENT ErrorCode = 2000
	ErrorCode_PARSE_FAILED     ErrorCode = 2001

	// GitBook repository access
	ErrorCode_GITHUB_CREDENTIALS_MISSING ErrorCode = 3000
	ErrorCode_GITHUB_FETCH_FAILED        ErrorCode = 3001
	ErrorCode_GITHUB_COMMIT_FAILED       ErrorCode = 3002

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 4000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 4001

	// Integrations
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5000
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_PARSE_NO_CONTENT:           "PARSE_NO_CONTENT",
	ErrorCode_PARSE_FAILED:               "PARSE_FAILED",
	ErrorCode_GITHUB_CREDENTIALS_MISSING: "GITHUB_CREDENTIALS_MISSING",
	ErrorCode_GITHUB_FETCH_FAILED:        "GITHUB_FETCH_FAILED",
	ErrorCode_GITHUB_COMMIT_FAILED:       "GITHUB_COMMIT_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:       "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
