package constants

import "errors"

// Configuration errors.
var (
	ErrNoServerToken    = errors.New("no server token configured, use 'postmark login --server-token' or set POSTMARK_SERVER_TOKEN")
	ErrNoAccountToken   = errors.New("no account token configured, use 'postmark login --account-token' or set POSTMARK_ACCOUNT_TOKEN")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidBooleanFlag  = errors.New("flag value must be 'true' or 'false'")
	ErrTemplateRequired    = errors.New("either --template-id or --template-alias is required")
	ErrRecipientRequired   = errors.New("--to flag is required")
	ErrSenderRequired      = errors.New("--from flag is required")
	ErrTimeoutInvalid      = errors.New("timeout must be a positive duration such as 30s")
)

// Operation errors.
var (
	ErrDataRemovalFailed = errors.New("data removal did not complete")
)

// File system errors.
var (
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
	ErrNotRegularFile             = errors.New("path is not a regular file")
)
