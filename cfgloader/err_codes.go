package cfgloader

// Error codes for config loading.
const (
	// CodeInvalidEnvironment is returned when ENVIRONMENT is unset or unknown.
	CodeInvalidEnvironment = "CONFIG_INVALID_ENVIRONMENT"

	// CodeFileNotFound is returned when ${ENVIRONMENT}.yaml does not exist.
	CodeFileNotFound = "CONFIG_FILE_NOT_FOUND"

	// CodeInvalidConfig is returned when the config fails validation.
	CodeInvalidConfig = "CONFIG_INVALID"
)
