package core

// Logger is any leveled logger that can also report errors to an external
// collector. Extra args may carry errors, structured data or the
// authenticated identity for error attribution.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
