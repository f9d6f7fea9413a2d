package services

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

var _ MetricsPublisher = (*MockMetricsPublisher)(nil)

// MockMetricsPublisher records published metrics for tests.
type MockMetricsPublisher struct {
	mock.Mock
	mu    sync.Mutex
	names []string
}

// Publish (Mocked)
func (m *MockMetricsPublisher) Publish(name string, value float64, unit string) {
	m.mu.Lock()
	m.names = append(m.names, name)
	m.mu.Unlock()
	m.Called(name, value, unit)
}

// Names returns the metric names published so far.
func (m *MockMetricsPublisher) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}
