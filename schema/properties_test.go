package schema

import (
	"testing"
)

func TestDefault_ContainsStandardProperties(t *testing.T) {
	r := Default()

	keys := []string{
		KeyInstanceURL,
		KeyAPIVersion,
		KeyDefaultDevHubUsername,
		KeyDefaultUsername,
		KeyISVDebuggerSID,
		KeyISVDebuggerURL,
		KeyRestDeploy,
		KeyMaxQueryLimit,
		KeyDisableTelemetry,
	}
	for _, key := range keys {
		if !r.Has(key) {
			t.Errorf("Default() missing %q", key)
		}
	}
}

func TestDefault_EncryptedProperties(t *testing.T) {
	r := Default()

	for _, key := range []string{KeyISVDebuggerSID, KeyISVDebuggerURL} {
		p, ok := r.Get(key)
		if !ok {
			t.Fatalf("Get(%q) not found", key)
		}
		if !p.Encrypted {
			t.Errorf("%s.Encrypted = false, want true", key)
		}
		if !p.Hidden {
			t.Errorf("%s.Hidden = false, want true", key)
		}
	}

	p, _ := r.Get(KeyDefaultUsername)
	if p.Encrypted {
		t.Errorf("%s.Encrypted = true, want false", KeyDefaultUsername)
	}
}

func TestDefault_FreshPerCall(t *testing.T) {
	a := Default()
	a.MustRegister(Property{Key: "custom"})

	b := Default()
	if b.Has("custom") {
		t.Error("Default() shares state across calls")
	}
}

func TestValidator_APIVersion(t *testing.T) {
	r := Default()
	p, _ := r.Get(KeyAPIVersion)

	valid := []any{"42.0", "54.0", "99.0"}
	for _, v := range valid {
		if !p.Input.Validate(v) {
			t.Errorf("apiVersion validator rejected %v", v)
		}
	}

	invalid := []any{"42", "42.1", "4.0", "", "abc", 42.0, true}
	for _, v := range invalid {
		if p.Input.Validate(v) {
			t.Errorf("apiVersion validator accepted %v", v)
		}
	}
}

func TestValidator_InstanceURL(t *testing.T) {
	r := Default()
	p, _ := r.Get(KeyInstanceURL)

	valid := []any{
		"https://myinstance.my.salesforce.com",
		"http://localhost:6109",
	}
	for _, v := range valid {
		if !p.Input.Validate(v) {
			t.Errorf("instanceUrl validator rejected %v", v)
		}
	}

	invalid := []any{"notaurl", "ftp://example.com", "", 42, true}
	for _, v := range invalid {
		if p.Input.Validate(v) {
			t.Errorf("instanceUrl validator accepted %v", v)
		}
	}
}

func TestValidator_Boolean(t *testing.T) {
	r := Default()
	p, _ := r.Get(KeyRestDeploy)

	valid := []any{"true", "false", true, false}
	for _, v := range valid {
		if !p.Input.Validate(v) {
			t.Errorf("restDeploy validator rejected %v", v)
		}
	}

	invalid := []any{"yes", "TRUE", "", 1, 0.0}
	for _, v := range invalid {
		if p.Input.Validate(v) {
			t.Errorf("restDeploy validator accepted %v", v)
		}
	}
}

func TestValidator_MaxQueryLimit(t *testing.T) {
	r := Default()
	p, _ := r.Get(KeyMaxQueryLimit)

	valid := []any{"150000", "1", 5000, int64(10), 300.0}
	for _, v := range valid {
		if !p.Input.Validate(v) {
			t.Errorf("maxQueryLimit validator rejected %v", v)
		}
	}

	invalid := []any{"0", "-5", "abc", "", 0, -1, 12.5, true}
	for _, v := range invalid {
		if p.Input.Validate(v) {
			t.Errorf("maxQueryLimit validator accepted %v", v)
		}
	}
}
