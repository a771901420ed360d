// Package report builds the display model for one Oracle request
// object. Build never fails: fields that are absent or undecodable in
// the fetched object are left empty and the renderer skips them.
package report

import (
	"github.com/tidwall/gjson"

	"github.com/nuwa-protocol/oracleview/internal/decode"
	"github.com/nuwa-protocol/oracleview/internal/rooch"
)

// Paths into decoded_value.value. The callback and response payloads
// sit inside a MoveOption<vector<vector<u8>>>, which the node renders
// as value.vec.value wrapping a nested array; element [0][0] is the
// single hex-encoded byte vector. A change in that on-chain encoding
// shows up here and nowhere else.
const (
	paramsPath      = "params.value"
	callbackHexPath = "notify.value.vec.value.0.0"
	responseVecPath = "response.value.vec"
	responseHexPath = "response.value.vec.value.0.0"
)

// HTTPRequest holds the decoded request parameters of an Oracle call.
type HTTPRequest struct {
	URL        string          `json:"url,omitempty"`
	Method     string          `json:"method,omitempty"`
	Headers    []decode.Header `json:"headers,omitempty"`
	HeadersRaw string          `json:"headers_raw,omitempty"`
	HasHeaders bool            `json:"-"`
	Body       string          `json:"body,omitempty"`
	HasBody    bool            `json:"-"`
}

// Report is the fully decoded view of one Oracle request object.
type Report struct {
	ID         string `json:"id"`
	ObjectType string `json:"object_type"`
	Owner      string `json:"owner"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`

	Amount    string `json:"amount,omitempty"`
	Requester string `json:"requester,omitempty"`
	Oracle    string `json:"oracle,omitempty"`

	Request  *HTTPRequest `json:"request,omitempty"`
	Callback string       `json:"callback,omitempty"`

	ResponseStatus  string `json:"response_status,omitempty"`
	ResponseContent string `json:"response_content,omitempty"`
	HasResponse     bool   `json:"-"`
	AIContent       string `json:"ai_content,omitempty"`
}

// Build decodes an object view into a Report.
func Build(obj rooch.ObjectView) *Report {
	r := &Report{
		ID:         obj.ID,
		ObjectType: obj.ObjectType,
		Owner:      obj.Owner,
	}
	if obj.CreatedAt != nil {
		r.CreatedAt = decode.Timestamp(obj.CreatedAt)
	}
	if obj.UpdatedAt != nil {
		r.UpdatedAt = decode.Timestamp(obj.UpdatedAt)
	}

	value := gjson.ParseBytes(obj.DecodedValue).Get("value")
	if !value.Exists() {
		return r
	}

	if v, ok := decode.Lookup(value, "amount"); ok {
		r.Amount = v.String()
	}
	if v, ok := decode.Lookup(value, "request_account"); ok {
		r.Requester = v.String()
	}
	if v, ok := decode.Lookup(value, "oracle"); ok {
		r.Oracle = v.String()
	}

	if params, ok := decode.Lookup(value, paramsPath); ok {
		req := &HTTPRequest{}
		if v, ok := decode.Lookup(params, "url"); ok {
			req.URL = v.String()
		}
		if v, ok := decode.Lookup(params, "method"); ok {
			req.Method = v.String()
		}
		if v, ok := decode.Lookup(params, "headers"); ok {
			req.HasHeaders = true
			req.Headers, req.HeadersRaw = decode.Headers(v.String())
		}
		if v, ok := decode.Lookup(params, "body"); ok {
			req.HasBody = true
			req.Body = decode.Body(v.String())
		}
		r.Request = req
	}

	if v, ok := decode.Lookup(value, callbackHexPath); ok {
		r.Callback = decode.Hex(v.String())
	}

	if v, ok := decode.Lookup(value, "response_status"); ok {
		r.ResponseStatus = v.String()
	}
	if _, ok := decode.Lookup(value, responseVecPath); ok {
		r.HasResponse = true
		if v, ok := decode.Lookup(value, responseHexPath); ok {
			r.ResponseContent, r.AIContent = decode.Response(v.String())
		}
	}

	return r
}
