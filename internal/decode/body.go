package decode

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// bodyPreviewLimit caps the raw preview shown for bodies that are not
// JSON.
const bodyPreviewLimit = 200

// Header is one decoded HTTP header.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Body formats a request body for display. Chat-style payloads (a
// top-level "messages" array) get a dedicated layout showing the model,
// temperature and each message; other JSON is pretty-printed; anything
// else is truncated to a short raw preview.
func Body(body string) string {
	if !gjson.Valid(body) {
		preview := body
		if runes := []rune(body); len(runes) > bodyPreviewLimit {
			preview = string(runes[:bodyPreviewLimit])
		}
		return preview + "...\n(Request body truncated for readability)"
	}

	parsed := gjson.Parse(body)
	msgs := parsed.Get("messages")
	if !msgs.IsArray() {
		return PrettyJSON(body)
	}

	var b strings.Builder
	model := "Not specified"
	if m := parsed.Get("model"); m.Exists() {
		model = m.String()
	}
	fmt.Fprintf(&b, "Model: %s\n", model)
	if t := parsed.Get("temperature"); t.Exists() {
		fmt.Fprintf(&b, "Temperature: %s\n", t.String())
	}

	b.WriteString("\n----- Messages -----\n\n")

	msgs.ForEach(func(_, msg gjson.Result) bool {
		role := "unknown"
		if r := msg.Get("role"); r.Exists() {
			role = r.String()
		}
		fmt.Fprintf(&b, "[%s]\n%s\n\n", formatRole(role), msg.Get("content").String())
		return true
	})

	return b.String()
}

// formatRole renders a chat role for display: "system" is fully
// upper-cased, every other role is capitalized.
func formatRole(role string) string {
	if role == "system" {
		return strings.ToUpper(role)
	}
	return capitalize(role)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Headers parses a JSON-encoded header map. It returns the decoded
// headers in document order, or the raw string when the field does not
// parse as a JSON object.
func Headers(s string) ([]Header, string) {
	if !gjson.Valid(s) {
		return nil, s
	}
	parsed := gjson.Parse(s)
	if !parsed.IsObject() {
		return nil, s
	}

	var headers []Header
	parsed.ForEach(func(k, v gjson.Result) bool {
		val := v.String()
		if v.Type != gjson.String {
			val = v.Raw
		}
		headers = append(headers, Header{Name: k.String(), Value: val})
		return true
	})
	return headers, ""
}

// Response decodes a hex-encoded response payload. The payload is
// usually a JSON document wrapped once more in JSON string encoding,
// so after hex decoding the two parse stages run independently: stage
// one parses the decoded text, and only if that yields a JSON string
// does stage two parse the inner text. The second return value is the
// assistant message extracted from an OpenAI-shaped result, when one
// is present.
func Response(hexStr string) (content, aiMessage string) {
	text := Hex(hexStr)
	if text == HexPlaceholder {
		return text, ""
	}

	if !gjson.Valid(text) {
		return text, ""
	}
	parsed := gjson.Parse(text)

	if parsed.Type == gjson.String {
		inner := parsed.String()
		if !gjson.Valid(inner) {
			return text, ""
		}
		parsed = gjson.Parse(inner)
	}

	content = PrettyJSON(parsed.Raw)

	if msg, ok := Lookup(parsed, "choices.0.message.content"); ok {
		aiMessage = msg.String()
	}
	return content, aiMessage
}

// PrettyJSON re-indents a JSON document, preserving key order.
func PrettyJSON(s string) string {
	return strings.TrimSpace(string(pretty.Pretty([]byte(s))))
}
