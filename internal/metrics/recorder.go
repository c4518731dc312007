package metrics

import "time"

// ResolutionOutcome labels the result of resolving a resource address.
type ResolutionOutcome string

const (
	ResolutionResolved   ResolutionOutcome = "resolved"
	ResolutionUnresolved ResolutionOutcome = "unresolved"
	ResolutionInvalid    ResolutionOutcome = "invalid"
)

// ConflictKind labels a rejected registration.
type ConflictKind string

const (
	ConflictIdentity ConflictKind = "identity"
	ConflictVersion  ConflictKind = "component_version"
	ConflictPath     ConflictKind = "publish_path"
	ConflictAlias    ConflictKind = "alias"
)

// Recorder defines observability hooks for catalog construction. Implementations
// may forward to Prometheus or similar. NoopRecorder is the default.
type Recorder interface {
	IncRegistration(family string)
	IncConflict(kind ConflictKind)
	IncResolution(outcome ResolutionOutcome)
	ObserveStageDuration(stage string, d time.Duration)
	SetComponentVersions(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncRegistration(string)                     {}
func (NoopRecorder) IncConflict(ConflictKind)                   {}
func (NoopRecorder) IncResolution(ResolutionOutcome)            {}
func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) SetComponentVersions(int)                   {}
