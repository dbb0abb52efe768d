package logging

// These constants are used to identify the various services that may do some logging
const (
	// VALUE_GENERATION_SERVICE is the constant used to identify the valuegeneration package
	VALUE_GENERATION_SERVICE = "valuegeneration"
)
