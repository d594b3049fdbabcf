package engine

import (
	"log"

	"github.com/lixenwraith/bouncers/vmath"
)

// LogReporter writes reports through a standard logger
type LogReporter struct {
	Logger *log.Logger
}

// NewLogReporter returns a reporter writing to l, or to the standard logger when l is nil
func NewLogReporter(l *log.Logger) *LogReporter {
	if l == nil {
		l = log.Default()
	}
	return &LogReporter{Logger: l}
}

func (r *LogReporter) Emit(label string, value int64) {
	r.Logger.Printf("%s%s", label, vmath.Format(value))
}
