package rooch

import "encoding/json"

// ObjectPage mirrors the JSON page emitted by `rooch object` on stdout.
// Both the by-ID lookup and the typed "latest" query return this shape.
type ObjectPage struct {
	Data []ObjectView `json:"data"`
}

// ObjectView is one object entry in a page. Only the envelope fields
// are typed; decoded_value is kept raw because its interior layout
// depends on the Move struct being viewed.
type ObjectView struct {
	ID         string `json:"id"`
	ObjectType string `json:"object_type"`
	Owner      string `json:"owner"`

	// Millisecond epoch timestamps. Node versions differ on whether
	// these are emitted as JSON strings or numbers.
	CreatedAt any `json:"created_at"`
	UpdatedAt any `json:"updated_at"`

	DecodedValue json.RawMessage `json:"decoded_value"`
}

// Result pairs the first object of a fetched page with the raw bytes
// the node CLI produced, for --raw output.
type Result struct {
	Raw    []byte
	Object ObjectView
}
