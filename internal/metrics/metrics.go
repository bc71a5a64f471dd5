// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Record management metrics
	IncStudentCreated()
	IncStudentUpdated()
	IncStudentDeleted()

	// Bulk import metrics
	IncImportItem(status string) // status: "created" or "failed"
}
