package analyses

import "errors"

var ErrNotFound = errors.New("not found")

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeExtraction = "EXTRACTION_ERROR"
	ErrorCodeTimeout    = "ANALYSIS_TIMEOUT"
	ErrorCodeStorage    = "STORAGE_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
