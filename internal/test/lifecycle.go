package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks appended during wiring so tests can run
// OnStart/OnStop by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without invoking it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever Shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies the test and never fails.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
