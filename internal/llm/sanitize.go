package llm

import "strings"

// piiKeys are the field names stripped recursively before any payload is
// sent to the LLM. Matching is case-insensitive and substring-based so
// nested DTOs like "userEmail" or "billingAddress" are also caught.
var piiKeys = []string{"email", "phone", "address", "name", "ssn", "accountnumber"}

// Sanitize walks a JSON-decoded value (map/slice/scalar tree, the shape
// encoding/json produces) and strips any map key matching piiKeys,
// replacing its value with the redaction marker. Mirrors the
// map[string]interface{} walk auditlog/domain.Diff already uses for
// diffing arbitrary entity snapshots.
func Sanitize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if isPIIKey(k) {
				out[k] = "[redacted]"
				continue
			}
			out[k] = Sanitize(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = Sanitize(child)
		}
		return out
	default:
		return val
	}
}

func isPIIKey(key string) bool {
	lower := strings.ToLower(key)
	for _, k := range piiKeys {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
