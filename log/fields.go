package log

const (
	NamespaceKey = "cancel"

	RunIDKey = NamespaceKey + ".run.id"
	StepsKey = NamespaceKey + ".run.steps"

	StepNameKey = NamespaceKey + ".step.name"

	AttemptKey  = NamespaceKey + ".attempt"
	DurationKey = NamespaceKey + ".duration_ms"

	// DeadlineKey is the deadline a run is executing under, if any
	DeadlineKey = NamespaceKey + ".deadline"
)
