package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncStudentCreated is a no-op.
func (n *NoopRecorder) IncStudentCreated() {}

// IncStudentUpdated is a no-op.
func (n *NoopRecorder) IncStudentUpdated() {}

// IncStudentDeleted is a no-op.
func (n *NoopRecorder) IncStudentDeleted() {}

// IncImportItem is a no-op.
func (n *NoopRecorder) IncImportItem(status string) {}
