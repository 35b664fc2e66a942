package errors

// Convenience functions for common error patterns

// Input and configuration errors

func InvalidRepoURL(url string) *ReadmeGenError {
	return New(CategoryValidation, SeverityFatal, "invalid repository URL").
		WithContext("url", url)
}

func ConfigRequired(field string) *ReadmeGenError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *ReadmeGenError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Retrieval errors

func CloneFailed(url string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryGit, SeverityFatal, "repository clone failed").
		WithContext("url", url)
}

func CleanupFailed(path string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryFileSystem, SeverityWarning, "workspace cleanup failed").
		WithContext("path", path)
}

// Pipeline errors

func AnalysisFailed(stage string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryAnalysis, SeverityFatal, "repository analysis failed").
		WithContext("stage", stage)
}

func ModelCallFailed(operation string, cause error) *ReadmeGenError {
	return WrapRetryable(cause, CategoryModel, SeverityWarning, "model call failed").
		WithContext("operation", operation)
}

func GenerationFailed(cause error) *ReadmeGenError {
	return Wrap(cause, CategoryGeneration, SeverityError, "README generation failed")
}

// Internal errors

func InternalError(message string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
