package httpd

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Notice is a single operator-facing status message from a run.
type Notice struct {
	Level   string
	Message string
}

// NoticeReporter collects a run's notices for the results page, echoing them
// to the process log.
type NoticeReporter struct {
	sync.Mutex
	log     *zap.SugaredLogger
	notices []Notice
}

func NewNoticeReporter(log *zap.SugaredLogger) *NoticeReporter {
	return &NoticeReporter{
		log: log,
	}
}

func (r *NoticeReporter) Infof(format string, args ...any) {
	r.log.Infof(format, args...)
	r.append("info", format, args...)
}

func (r *NoticeReporter) Successf(format string, args ...any) {
	r.log.Infof(format, args...)
	r.append("success", format, args...)
}

func (r *NoticeReporter) Warnf(format string, args ...any) {
	r.log.Warnf(format, args...)
	r.append("warning", format, args...)
}

func (r *NoticeReporter) Errorf(format string, args ...any) {
	r.log.Errorf(format, args...)
	r.append("error", format, args...)
}

func (r *NoticeReporter) Notices() []Notice {
	r.Lock()
	defer r.Unlock()

	return append([]Notice{}, r.notices...)
}

func (r *NoticeReporter) append(level, format string, args ...any) {
	r.Lock()
	defer r.Unlock()

	r.notices = append(r.notices, Notice{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}
