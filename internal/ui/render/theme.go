package render

// ANSI color codes understood by gocui's escape interpreter.
const (
	Reset  = "\x1b[0m"
	Red    = "\x1b[0;31m"
	Green  = "\x1b[0;32m"
	Yellow = "\x1b[0;33m"
	Blue   = "\x1b[0;34m"
	Cyan   = "\x1b[0;36m"
	Bold   = "\x1b[1m"
	Dim    = "\x1b[2m"
)
