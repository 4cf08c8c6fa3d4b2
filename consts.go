package logging

const (
	// timestampLayout renders record timestamps as dd-mm-yy HH:MM:SS.mmm
	// in local time.
	timestampLayout = "02-01-06 15:04:05.000"

	emptyString = ""
)

// ANSI escape sequences wrapping severity tags on colorized destinations.
const (
	colorReset   = "\033[0m"
	colorCyan    = "\033[36m"
	colorBlue    = "\033[34m"
	colorWhite   = "\033[37m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorMagenta = "\033[35m"
)

const (
	diagMsgAlreadyInitialized = "logger already initialized"
	diagMsgFileSize           = "could not determine log file size"
	diagMsgClearFile          = "could not clear log file"
)
