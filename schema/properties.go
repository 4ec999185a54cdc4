package schema

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
)

// Standard Salesforce DX property keys.
const (
	// KeyInstanceURL is the login URL of the scratch org instance.
	KeyInstanceURL = "instanceUrl"

	// KeyAPIVersion pins the Salesforce API version used by tooling.
	KeyAPIVersion = "apiVersion"

	// KeyDefaultDevHubUsername is the username or alias of the default Dev Hub org.
	KeyDefaultDevHubUsername = "defaultdevhubusername"

	// KeyDefaultUsername is the username or alias of the default target org.
	KeyDefaultUsername = "defaultusername"

	// KeyISVDebuggerSID is the ISV customer debugger session ID.
	KeyISVDebuggerSID = "isvDebuggerSid"

	// KeyISVDebuggerURL is the ISV customer debugger URL.
	KeyISVDebuggerURL = "isvDebuggerUrl"

	// KeyRestDeploy switches deploys to the REST API instead of SOAP.
	KeyRestDeploy = "restDeploy"

	// KeyMaxQueryLimit caps the number of records returned by queries.
	KeyMaxQueryLimit = "maxQueryLimit"

	// KeyDisableTelemetry opts out of usage telemetry.
	KeyDisableTelemetry = "disableTelemetry"
)

var apiVersionPattern = regexp.MustCompile(`^[1-9]\d\.0$`)

// Default returns a fresh registry populated with the standard
// Salesforce DX properties. Each call builds a new registry so
// callers can extend it without affecting others.
func Default() *Registry {
	r := NewRegistry()

	r.MustRegister(Property{
		Key:         KeyInstanceURL,
		Description: "URL of the Salesforce instance hosting the org",
		Input: &Validator{
			Validate:      isInstanceURL,
			FailedMessage: "Specify a valid Salesforce instance URL.",
		},
	})
	r.MustRegister(Property{
		Key:         KeyAPIVersion,
		Description: "API version used by commands that call Salesforce APIs",
		Input: &Validator{
			Validate:      isAPIVersion,
			FailedMessage: "Specify a valid Salesforce API version, for example, 42.0.",
		},
	})
	r.MustRegister(Property{
		Key:         KeyDefaultDevHubUsername,
		Description: "username or alias of the default Dev Hub org",
	})
	r.MustRegister(Property{
		Key:         KeyDefaultUsername,
		Description: "username or alias of the default target org",
	})
	r.MustRegister(Property{
		Key:       KeyISVDebuggerSID,
		Hidden:    true,
		Encrypted: true,
	})
	r.MustRegister(Property{
		Key:       KeyISVDebuggerURL,
		Hidden:    true,
		Encrypted: true,
	})
	r.MustRegister(Property{
		Key:         KeyRestDeploy,
		Description: "use the REST API for deployments instead of SOAP",
		Input: &Validator{
			Validate:      isBoolean,
			FailedMessage: "Specify true or false.",
		},
	})
	r.MustRegister(Property{
		Key:         KeyMaxQueryLimit,
		Description: "maximum number of records returned by queries",
		Input: &Validator{
			Validate:      isPositiveInteger,
			FailedMessage: "Specify a valid positive integer, for example, 150000.",
		},
	})
	r.MustRegister(Property{
		Key:         KeyDisableTelemetry,
		Description: "opt out of usage telemetry",
		Input: &Validator{
			Validate:      isBoolean,
			FailedMessage: "Specify true or false.",
		},
	})

	return r
}

func isInstanceURL(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isAPIVersion(value any) bool {
	s, ok := value.(string)
	return ok && apiVersionPattern.MatchString(s)
}

// isBoolean accepts native booleans and the strings "true"/"false".
// String forms come from environment variables and CLI arguments.
func isBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case string:
		return v == "true" || v == "false"
	}
	return false
}

// isPositiveInteger accepts integer types, whole float64 values
// (the shape JSON decoding produces), and strings of digits.
func isPositiveInteger(value any) bool {
	switch v := value.(type) {
	case int:
		return v > 0
	case int64:
		return v > 0
	case float64:
		return v > 0 && v == math.Trunc(v)
	case string:
		n, err := strconv.Atoi(v)
		return err == nil && n > 0
	}
	return false
}
