package decode

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyChat(t *testing.T) {
	body := `{"model":"gpt-4","temperature":0.7,"messages":[` +
		`{"role":"system","content":"be nice"},` +
		`{"role":"user","content":"hi there"}]}`

	got := Body(body)

	assert.True(t, strings.HasPrefix(got, "Model: gpt-4\nTemperature: 0.7\n"), "got:\n%s", got)
	assert.Contains(t, got, "----- Messages -----")
	assert.Contains(t, got, "[SYSTEM]\nbe nice\n")
	assert.Contains(t, got, "[User]\nhi there\n")
}

func TestBodyChatDefaults(t *testing.T) {
	got := Body(`{"messages":[{"content":"no role"}]}`)

	assert.True(t, strings.HasPrefix(got, "Model: Not specified\n"))
	assert.NotContains(t, got, "Temperature:")
	assert.Contains(t, got, "[Unknown]\nno role\n")
}

func TestBodyMessagesNotArray(t *testing.T) {
	// A "messages" field that is not a list gets the plain JSON layout.
	got := Body(`{"messages":"oops"}`)

	assert.Contains(t, got, `"messages"`)
	assert.NotContains(t, got, "----- Messages -----")
}

func TestBodyPlainJSON(t *testing.T) {
	got := Body(`{"query":"price","symbols":["BTC","ETH"]}`)

	assert.Contains(t, got, `"query": "price"`)
	assert.Contains(t, got, "BTC")
}

func TestBodyNotJSON(t *testing.T) {
	got := Body("plain text body")
	assert.Equal(t, "plain text body...\n(Request body truncated for readability)", got)
}

func TestBodyNotJSONTruncated(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := Body(long)

	assert.Equal(t, strings.Repeat("x", 200)+"...\n(Request body truncated for readability)", got)
}

func TestHeaders(t *testing.T) {
	headers, raw := Headers(`{"Content-Type":"application/json","X-Attempts":2}`)

	require.Empty(t, raw)
	require.Len(t, headers, 2)
	assert.Equal(t, Header{Name: "Content-Type", Value: "application/json"}, headers[0])
	assert.Equal(t, Header{Name: "X-Attempts", Value: "2"}, headers[1])
}

func TestHeadersEmpty(t *testing.T) {
	headers, raw := Headers(`{}`)
	assert.Empty(t, headers)
	assert.Empty(t, raw)
}

func TestHeadersNotJSON(t *testing.T) {
	headers, raw := Headers("Authorization: Bearer xyz")
	assert.Nil(t, headers)
	assert.Equal(t, "Authorization: Bearer xyz", raw)
}

func TestHeadersNotObject(t *testing.T) {
	headers, raw := Headers(`[1,2]`)
	assert.Nil(t, headers)
	assert.Equal(t, `[1,2]`, raw)
}

func TestResponseDoubleEncoded(t *testing.T) {
	inner := `{"choices":[{"message":{"content":"hello"}}]}`
	outer, err := json.Marshal(inner) // wraps the document in JSON string encoding
	require.NoError(t, err)

	content, ai := Response("0x" + hex.EncodeToString(outer))

	assert.Equal(t, "hello", ai)
	assert.Contains(t, content, `"content": "hello"`)
}

func TestResponseSingleEncoded(t *testing.T) {
	inner := `{"choices":[{"message":{"content":"hello"}}]}`

	content, ai := Response(hex.EncodeToString([]byte(inner)))

	assert.Equal(t, "hello", ai)
	assert.Contains(t, content, "choices")
}

func TestResponseNotOpenAIShape(t *testing.T) {
	content, ai := Response(hex.EncodeToString([]byte(`{"status":"done"}`)))

	assert.Empty(t, ai)
	assert.Contains(t, content, `"status": "done"`)
}

func TestResponseNotJSON(t *testing.T) {
	content, ai := Response(hex.EncodeToString([]byte("plain response text")))

	assert.Equal(t, "plain response text", content)
	assert.Empty(t, ai)
}

func TestResponseInnerNotJSON(t *testing.T) {
	// Decodes to a JSON string whose contents are not JSON: stage two
	// fails and the decoded text is shown as-is.
	content, ai := Response(hex.EncodeToString([]byte(`"just a string"`)))

	assert.Equal(t, `"just a string"`, content)
	assert.Empty(t, ai)
}

func TestResponseBadHex(t *testing.T) {
	content, ai := Response("zz")

	assert.Equal(t, HexPlaceholder, content)
	assert.Empty(t, ai)
}
