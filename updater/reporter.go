package updater

import (
	"go.uber.org/zap"
)

// LogReporter surfaces notices on the process log, for headless runs.
type LogReporter struct {
	log *zap.SugaredLogger
}

func NewLogReporter(log *zap.SugaredLogger) *LogReporter {
	return &LogReporter{
		log: log,
	}
}

func (r *LogReporter) Infof(format string, args ...any) {
	r.log.Infof(format, args...)
}

func (r *LogReporter) Successf(format string, args ...any) {
	r.log.Infof(format, args...)
}

func (r *LogReporter) Warnf(format string, args ...any) {
	r.log.Warnf(format, args...)
}

func (r *LogReporter) Errorf(format string, args ...any) {
	r.log.Errorf(format, args...)
}
