package commands

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gitlab.com/aero-tools/flightscript/formatter"
	"gitlab.com/aero-tools/flightscript/helpers/prometheus"
	"gitlab.com/aero-tools/flightscript/script"
)

// session is one script being built: its log, the writer formatting
// commands into it and the metrics about it.
type session struct {
	id     string
	logger *logrus.Entry

	log       *script.Log
	writer    *formatter.Writer
	collector *prometheus.SessionCollector
}

// newSession creates a session over the built-in catalog extended with the
// given catalog files.
func newSession(catalogFiles ...string) (*session, error) {
	catalog := formatter.Builtin()
	for _, path := range catalogFiles {
		if path == "" {
			continue
		}

		custom, err := formatter.LoadCatalogFile(path)
		if err != nil {
			return nil, err
		}

		catalog, err = catalog.Extend(custom)
		if err != nil {
			return nil, fmt.Errorf("extending catalog with %s: %w", path, err)
		}
	}

	s := &session{
		id:        uuid.NewString(),
		log:       script.New(),
		collector: prometheus.NewSessionCollector(),
	}

	s.logger = logrus.WithField("session", s.id)
	s.writer = formatter.NewWriter(s.log, catalog, s.logger)
	s.log.OnAppend(func(n int) {
		s.collector.RecordAppend(s.id, n)
	})

	return s, nil
}

func (s *session) writeScript(path string) error {
	if err := s.log.WriteFile(path); err != nil {
		return err
	}

	size := int64(len(s.log.Bytes()))
	s.collector.RecordWrite(s.id, size)

	s.logger.WithFields(logrus.Fields{
		"file":  path,
		"lines": s.log.Len(),
		"size":  units.HumanSize(float64(size)),
	}).Infoln("Script written")

	return nil
}
