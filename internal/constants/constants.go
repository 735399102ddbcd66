package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Polling intervals and timeouts.
const (
	// DefaultPollInterval is used for polling operations.
	DefaultPollInterval = 2 * time.Second

	// QuickPollInterval is used for fast polling.
	QuickPollInterval = 10 * time.Millisecond

	// DefaultDataRemovalPollTimeout bounds how long a data removal is polled.
	DefaultDataRemovalPollTimeout = 5 * time.Minute
)

// Data removal states.
const (
	DataRemovalStatusPending = "Pending"
	DataRemovalStatusDone    = "Done"
)

// Output formats.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Boolean string constants.
const (
	BooleanTrue  = "true"
	BooleanFalse = "false"
)

// Display limits.
const (
	// DefaultPageSize is the count requested by list commands.
	DefaultPageSize = 50

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 60
)
