package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	StudentsCreated    uint64
	StudentsUpdated    uint64
	StudentsDeleted    uint64
	ImportItemsCreated uint64
	ImportItemsFailed  uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	studentsCreated    uint64
	studentsUpdated    uint64
	studentsDeleted    uint64
	importItemsCreated uint64
	importItemsFailed  uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		StudentsCreated:    atomic.LoadUint64(&m.studentsCreated),
		StudentsUpdated:    atomic.LoadUint64(&m.studentsUpdated),
		StudentsDeleted:    atomic.LoadUint64(&m.studentsDeleted),
		ImportItemsCreated: atomic.LoadUint64(&m.importItemsCreated),
		ImportItemsFailed:  atomic.LoadUint64(&m.importItemsFailed),
	}
}

// IncStudentCreated increments the created counter.
func (m *InMemoryRecorder) IncStudentCreated() {
	atomic.AddUint64(&m.studentsCreated, 1)
}

// IncStudentUpdated increments the updated counter.
func (m *InMemoryRecorder) IncStudentUpdated() {
	atomic.AddUint64(&m.studentsUpdated, 1)
}

// IncStudentDeleted increments the deleted counter.
func (m *InMemoryRecorder) IncStudentDeleted() {
	atomic.AddUint64(&m.studentsDeleted, 1)
}

// IncImportItem increments the import counter for the given outcome.
func (m *InMemoryRecorder) IncImportItem(status string) {
	if status == "created" {
		atomic.AddUint64(&m.importItemsCreated, 1)
		return
	}
	atomic.AddUint64(&m.importItemsFailed, 1)
}
