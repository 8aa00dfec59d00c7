package cfgmgr

import (
	"iter"

	"github.com/FxStar/devinfo/devprop"
	"github.com/sirupsen/logrus"
)

// Manager answers device and class queries through a Service. It holds no
// mutable state: every query goes back to the service, and a Manager can be
// shared between goroutines to the extent the service allows it.
type Manager struct {
	svc Service
	log *logrus.Entry
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics. Failed calls are logged
// at debug level.
func WithLogger(l *logrus.Entry) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// NewManager returns a Manager over svc.
func NewManager(svc Service, opts ...Option) *Manager {
	m := &Manager{
		svc: svc,
		log: logrus.WithField("component", "cfgmgr"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Local returns a Manager over the configuration manager of this machine.
func Local(opts ...Option) *Manager {
	return NewManager(System(), opts...)
}

// fail logs a failed call and returns it as an error.
func (m *Manager) fail(op string, cr Result) error {
	m.log.WithFields(logrus.Fields{
		"op": op,
		"cr": cr,
	}).Debug("configuration manager call failed")
	return &Error{Op: op, Result: cr}
}

// Enumerators lists the names of the device enumerators (ROOT, PCI, USB,
// ACPI, ...).
func (m *Manager) Enumerators() iter.Seq2[string, error] {
	return enumerate(m, "CM_Enumerate_EnumeratorsW", indexLimit, func(i uint32) (string, Result) {
		buf := make([]uint16, MAX_DEVICE_ID_LEN)
		n := uint32(len(buf))
		cr := m.svc.EnumerateEnumerators(i, buf, &n)
		if cr != CR_SUCCESS {
			return "", cr
		}
		return devprop.UTF16ToString(buf), cr
	})
}
