package health

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Describer is implemented by checkers that report extra detail when healthy.
type Describer interface {
	Describe() string
}

// Status is the outcome of a single checker.
type Status struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report aggregates every checker. Ready is false if any check failed.
type Report struct {
	Ready  bool     `json:"ready"`
	Checks []Status `json:"checks"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) Report
}

type service struct {
	checkers []Checker
	log      logrus.FieldLogger
}

// NewService aggregates dependency checkers.
func NewService(log logrus.FieldLogger, checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers, log: log}
}

func (s *service) Ready(ctx context.Context) Report {
	rep := Report{Ready: true, Checks: make([]Status, 0, len(s.checkers))}
	for _, ch := range s.checkers {
		st := Status{Name: ch.Name(), OK: true}
		if err := ch.Check(ctx); err != nil {
			st.OK, st.Detail = false, err.Error()
			rep.Ready = false
			s.log.WithField("check", st.Name).WithError(err).Warn("readiness check failed")
		} else if d, ok := ch.(Describer); ok {
			st.Detail = d.Describe()
		}
		rep.Checks = append(rep.Checks, st)
	}
	return rep
}
