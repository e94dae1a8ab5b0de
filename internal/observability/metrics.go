package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for commands and HTTP requests.
type Metrics struct {
	mu             sync.Mutex
	requestCount   map[string]int64
	errorCount     map[string]int64
	commandCount   map[string]int64
	commandFailure map[string]int64
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Requests        map[string]int64 `json:"requests"`
	Errors          map[string]int64 `json:"errors"`
	Commands        map[string]int64 `json:"commands"`
	CommandFailures map[string]int64 `json:"command_failures"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:   make(map[string]int64),
		errorCount:     make(map[string]int64),
		commandCount:   make(map[string]int64),
		commandFailure: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordCommand counts one handler invocation of the given kind (slash or prefix).
func (m *Metrics) RecordCommand(kind, name string, failed bool) {
	if m == nil {
		return
	}
	key := kind + "|" + name
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandCount[key]++
	if failed {
		m.commandFailure[key]++
	}
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Requests:        copyCounts(m.requestCount),
		Errors:          copyCounts(m.errorCount),
		Commands:        copyCounts(m.commandCount),
		CommandFailures: copyCounts(m.commandFailure),
	}
}

func copyCounts(src map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
