package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	linesAppendedDesc = prometheus.NewDesc(
		"flightscript_script_lines_appended_total",
		"Total number of lines appended to script logs",
		[]string{"session"},
		nil,
	)
	scriptWritesDesc = prometheus.NewDesc(
		"flightscript_script_writes_total",
		"Total number of script files written",
		[]string{"session"},
		nil,
	)
	scriptBytesDesc = prometheus.NewDesc(
		"flightscript_script_written_bytes_total",
		"Total number of script bytes written",
		[]string{"session"},
		nil,
	)
)

type sessionStats struct {
	lines  int64
	writes int64
	bytes  int64
}

// SessionCollector tracks script building per session.
type SessionCollector struct {
	lock sync.RWMutex

	sessions map[string]*sessionStats
}

func (sc *SessionCollector) stats(session string) *sessionStats {
	s, ok := sc.sessions[session]
	if !ok {
		s = new(sessionStats)
		sc.sessions[session] = s
	}

	return s
}

func (sc *SessionCollector) RecordAppend(session string, lines int) {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	sc.stats(session).lines += int64(lines)
}

func (sc *SessionCollector) RecordWrite(session string, bytes int64) {
	sc.lock.Lock()
	defer sc.lock.Unlock()

	s := sc.stats(session)
	s.writes++
	s.bytes += bytes
}

func (sc *SessionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- linesAppendedDesc
	ch <- scriptWritesDesc
	ch <- scriptBytesDesc
}

func (sc *SessionCollector) Collect(ch chan<- prometheus.Metric) {
	sc.lock.RLock()
	defer sc.lock.RUnlock()

	for session, s := range sc.sessions {
		ch <- prometheus.MustNewConstMetric(linesAppendedDesc, prometheus.CounterValue, float64(s.lines), session)
		ch <- prometheus.MustNewConstMetric(scriptWritesDesc, prometheus.CounterValue, float64(s.writes), session)
		ch <- prometheus.MustNewConstMetric(scriptBytesDesc, prometheus.CounterValue, float64(s.bytes), session)
	}
}

func NewSessionCollector() *SessionCollector {
	return &SessionCollector{
		sessions: make(map[string]*sessionStats),
	}
}
