package calculation

// Logger is the logging seam the orchestrator and the projection engine
// write through. The CLI supplies a stderr-backed implementation when
// verbose output is requested; everything else runs on NopLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards every message. It is the default for library
// callers that construct an Orchestrator without a logger.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
