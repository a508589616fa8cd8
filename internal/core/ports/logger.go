package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetDebug enables debug level messages.
	SetDebug(enable bool)
	// SetJSON switches to JSON output.
	SetJSON(enable bool)
}
