package prometheus

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var numErrorsDesc = prometheus.NewDesc(
	"flightscript_log_errors_total",
	"The number of logged warnings and errors.",
	[]string{"level"},
	nil,
)

// LogHook counts log entries of warning level and above.
type LogHook struct {
	errorsNumber map[logrus.Level]*int64
}

func (lh *LogHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
	}
}

func (lh *LogHook) Fire(entry *logrus.Entry) error {
	atomic.AddInt64(lh.errorsNumber[entry.Level], 1)

	return nil
}

func (lh *LogHook) Describe(ch chan<- *prometheus.Desc) {
	ch <- numErrorsDesc
}

func (lh *LogHook) Collect(ch chan<- prometheus.Metric) {
	for level, number := range lh.errorsNumber {
		ch <- prometheus.MustNewConstMetric(
			numErrorsDesc,
			prometheus.CounterValue,
			float64(atomic.LoadInt64(number)),
			level.String(),
		)
	}
}

func NewLogHook() LogHook {
	lh := LogHook{}

	levels := lh.Levels()
	lh.errorsNumber = make(map[logrus.Level]*int64, len(levels))
	for _, level := range levels {
		lh.errorsNumber[level] = new(int64)
	}

	return lh
}
