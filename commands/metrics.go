package commands

import (
	prometheus_client "github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/helpers/prometheus"
)

var logHook = prometheus.NewLogHook()

// RegisterLogHook counts the warnings and errors of the standard logger so
// they end up in the metrics file.
func RegisterLogHook() {
	logrus.AddHook(&logHook)
}

// writeMetrics writes the collectors, the build information and the log
// counters to path. Nothing is written when path is empty.
func writeMetrics(path string, collectors ...prometheus_client.Collector) {
	if path == "" {
		return
	}

	collectors = append(collectors, common.AppVersion.NewMetricsCollector(), &logHook)
	if err := prometheus.WriteTextfile(path, collectors...); err != nil {
		logrus.WithError(err).Warningln("Failed to write metrics")
		return
	}

	logrus.WithField("file", path).Debugln("Metrics written")
}
