// Package observability aggregates runtime counters for periodic reporting.
package observability

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/shirou/gopsutil/process"
)

// Stats is one snapshot of engine activity plus process health.
type Stats struct {
	MessagesSeen    uint64
	SpamWarnings    uint64
	ContentWarnings uint64
	Removals        uint64
	JoinsDeleted    uint64
	StorageErrors   uint64
	ActionsExecuted uint64
	ActionFailures  uint64

	AllocMemMb uint64
	NumGC      uint32
	CPUPercent float64
}

// Monitor collects moderation counters from the workers. All increments are
// atomic; the workers share one instance.
type Monitor struct {
	messagesSeen    atomic.Uint64
	spamWarnings    atomic.Uint64
	contentWarnings atomic.Uint64
	removals        atomic.Uint64
	joinsDeleted    atomic.Uint64
	storageErrors   atomic.Uint64
	actionsExecuted atomic.Uint64
	actionFailures  atomic.Uint64

	proc *process.Process
}

func NewMonitor() *Monitor {
	// Best effort: a nil proc only disables the CPU gauge.
	proc, _ := process.NewProcess(int32(os.Getpid()))
	return &Monitor{proc: proc}
}

func (m *Monitor) IncrMessagesSeen()    { m.messagesSeen.Add(1) }
func (m *Monitor) IncrSpamWarnings()    { m.spamWarnings.Add(1) }
func (m *Monitor) IncrContentWarnings() { m.contentWarnings.Add(1) }
func (m *Monitor) IncrRemovals()        { m.removals.Add(1) }
func (m *Monitor) IncrJoinsDeleted()    { m.joinsDeleted.Add(1) }
func (m *Monitor) IncrStorageErrors()   { m.storageErrors.Add(1) }
func (m *Monitor) IncrActionsExecuted() { m.actionsExecuted.Add(1) }
func (m *Monitor) IncrActionFailures()  { m.actionFailures.Add(1) }

// Snapshot reads all counters plus memory and CPU usage of the process.
func (m *Monitor) Snapshot() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := Stats{
		MessagesSeen:    m.messagesSeen.Load(),
		SpamWarnings:    m.spamWarnings.Load(),
		ContentWarnings: m.contentWarnings.Load(),
		Removals:        m.removals.Load(),
		JoinsDeleted:    m.joinsDeleted.Load(),
		StorageErrors:   m.storageErrors.Load(),
		ActionsExecuted: m.actionsExecuted.Load(),
		ActionFailures:  m.actionFailures.Load(),
		AllocMemMb:      mem.Alloc / 1024 / 1024,
		NumGC:           mem.NumGC,
	}

	if m.proc != nil {
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}
	return stats
}
