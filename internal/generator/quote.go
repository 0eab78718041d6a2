package generator

import (
	"bytes"
	"encoding/json"
)

// jsString returns s as a double-quoted JavaScript string literal, matching
// JSON.stringify except that U+2028 and U+2029 are always escaped.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
