// Package decode contains the best-effort decoders for the payloads
// embedded in an Oracle request object: hex-encoded byte strings,
// JSON-encoded request fields, and doubly JSON-encoded response
// bodies. Nothing here returns an error; every failure degrades to a
// placeholder or raw-text fallback so one bad field never sinks the
// rest of the report.
package decode

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// HexPlaceholder is returned for any payload that does not decode to
// valid UTF-8 text.
const HexPlaceholder = "[Unable to decode hex]"

// Hex decodes a hex string (optional 0x prefix) to UTF-8 text.
func Hex(s string) string {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil || !utf8.Valid(b) {
		return HexPlaceholder
	}
	return string(b)
}

// Lookup resolves a dotted key path against a JSON document. The
// second return is false the moment any segment is missing or the
// current value cannot be descended into; absence is never an error.
func Lookup(doc gjson.Result, path string) (gjson.Result, bool) {
	v := doc.Get(path)
	return v, v.Exists()
}

// Timestamp formats a millisecond epoch value, which the node emits as
// either a JSON string or a number, as a local date-time. Values that
// do not coerce to an integer are echoed back as-is.
func Timestamp(v any) string {
	ms, err := cast.ToInt64E(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}
