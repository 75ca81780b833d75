package config

import "errors"

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the configuration struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")
