package config

import "errors"

var (
	ErrTokenMissing      = errors.New("FLOATSYNC_TOKEN (or TOKEN) is required")
	ErrSheetIDMissing    = errors.New("FLOATSYNC_SHEET_ID (or SHEET_ID) is required")
	ErrInvalidTimeout    = errors.New("timeout_ms must be positive")
	ErrInvalidMaxRetries = errors.New("max_retries must not be negative")
)
