package config

import "os"

// EnvDevelopment reports the DEVELOPMENT env variable; ok is false when it is
// unset.
func EnvDevelopment() (development, ok bool) {
	value, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false, false
	}
	return value != "0", true
}
