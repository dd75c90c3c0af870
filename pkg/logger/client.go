package logger

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Err wraps an error into a Field under the conventional "err" key.
func Err(err error) Field {
	return Field{Key: "err", Value: err}
}

// Client is the logging facade used across the service.
type Client interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
