package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API locations.
const (
	// APIVersion is the all.culture.ru API revision this client speaks.
	APIVersion = "2.2"

	// DefaultBaseURL is the versioned API root every resource stub is joined to.
	DefaultBaseURL = "https://all.culture.ru/api/" + APIVersion + "/"

	// DefaultUploadsURL is the image storage root used by image URL helpers.
	DefaultUploadsURL = "https://all.culture.ru/uploads/"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "allculture-go/" + APIVersion
)

// HTTP and network timeouts.
const (
	// DefaultConnectTimeout bounds TCP connection setup only.
	DefaultConnectTimeout = 3 * time.Second

	// DefaultKeepAlive is the keep-alive period for pooled connections.
	DefaultKeepAlive = 30 * time.Second

	// ShortHTTPTimeout is used by the CLI as the overall request deadline.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless an embedder asks for them.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusServerError is the first status treated as a transport failure.
	HTTPStatusServerError = 500
)

// Output formats and display.
const (
	// FormatAuto picks table on a terminal and JSON otherwise.
	FormatAuto = "auto"

	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the indentation used for JSON and YAML output.
	JSONIndentSize = 2

	// CellTruncationLimit bounds nested values rendered into table cells.
	CellTruncationLimit = 60

	// DefaultColumns are rendered for list responses when no columns are given.
	DefaultColumns = "_id,name"

	// DefaultDatePattern is the strftime pattern used by the date command.
	DefaultDatePattern = "%Y-%m-%d %H:%M:%S"
)
