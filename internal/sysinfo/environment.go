package sysinfo

import "strings"

var envPrefixes = []string{"KUBERNETES_", "OPENSHIFT_", "POD_"}

var envNames = map[string]struct{}{
	"HOSTNAME":    {},
	"HOME":        {},
	"PATH":        {},
	"LOG_LEVEL":   {},
	"APP_VERSION": {},
}

// EnvAllowed reports whether a variable may be surfaced. Everything not listed
// here, secrets included, stays hidden.
func EnvAllowed(name string) bool {
	if _, ok := envNames[name]; ok {
		return true
	}
	for _, p := range envPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// FilterEnvironment takes os.Environ-style KEY=VALUE pairs. The result is never nil.
func FilterEnvironment(environ []string) map[string]string {
	out := make(map[string]string)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		if EnvAllowed(k) {
			out[k] = v
		}
	}
	return out
}
