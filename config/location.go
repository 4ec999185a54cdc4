package config

// Location identifies the layer a resolved value came from.
type Location string

// Layer locations, in descending precedence order.
const (
	// LocationEnvironment indicates the value came from an SFDX_
	// environment variable.
	LocationEnvironment Location = "Environment"

	// LocationLocal indicates the value came from the project
	// settings file.
	LocationLocal Location = "Local"

	// LocationGlobal indicates the value came from the user's global
	// settings file.
	LocationGlobal Location = "Global"

	// LocationNone indicates no layer holds a value for the key.
	LocationNone Location = ""
)
