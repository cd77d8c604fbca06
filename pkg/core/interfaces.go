package core

// Logger interface for probe volume logging
type Logger interface {
	Printf(format string, args ...interface{})
}
