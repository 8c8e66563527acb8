package service

// MetricsRecorder counts business events for operational dashboards.
type MetricsRecorder interface {
	UserRegistered()
	LoginSucceeded()
	RecipeCreated()
	RecipeDeleted()
	ImageUploaded()
}
