package golove

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Toy describes a device managed by the app.
type Toy struct {
	// ID is the toy's unique identifier.
	ID string `json:"id"`
	// Name is the model name, e.g. "max".
	Name string `json:"name"`
	// NickName is the user-assigned name, if any.
	NickName string `json:"nickName"`
	// Battery is the charge level in percent.
	Battery int `json:"battery"`
	// Version is the firmware version.
	Version string `json:"version"`
	// Status is 1 while the toy is connected.
	Status int `json:"status"`
}

// Connected reports whether the toy is currently connected to the app.
func (t Toy) Connected() bool { return t.Status == 1 }

// DisplayName returns the nickname when set, otherwise the model name.
func (t Toy) DisplayName() string {
	if t.NickName != "" {
		return t.NickName
	}
	return t.Name
}

// Response is a decoded reply from the app.
type Response struct {
	// Code is the result code; always CodeOK for responses returned
	// without error.
	Code int
	// Type is the reply's type field, usually "OK".
	Type string
	// Data holds the reply payload with nested JSON-encoded strings
	// already re-parsed into objects.
	Data map[string]any
	// Toys holds decoded toy descriptors when the payload carries any.
	Toys []Toy
	// Raw is the verbatim reply body.
	Raw json.RawMessage
}

// ToyNames returns the toy names carried in the reply, either from full
// descriptors or from a GetToyName payload.
func (r *Response) ToyNames() []string {
	if len(r.Toys) > 0 {
		names := make([]string, len(r.Toys))
		for i, toy := range r.Toys {
			names[i] = toy.DisplayName()
		}
		return names
	}
	raw, ok := r.Data["toys"]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var names []string
	for _, item := range items {
		if name, ok := item.(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// wireCode accepts the reply's code field as either a JSON number or a
// numeric string; the app is not consistent about which it sends.
type wireCode struct {
	value int
	set   bool
}

func (c *wireCode) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("code %q is not numeric", s)
	}
	c.value = v
	c.set = true
	return nil
}

type wireResponse struct {
	Code wireCode        `json:"code"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// DecodeResponse maps a raw reply body onto the result taxonomy: success,
// a *CommandError for any non-success code (documented or not), or
// ErrMalformedResponse when the body lacks the required structure.
func DecodeResponse(data []byte) (*Response, error) {
	var wire wireResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v (body: %s)", ErrMalformedResponse, err, truncatePreview(data))
	}
	if !wire.Code.set {
		return nil, fmt.Errorf("%w: reply has no code field (body: %s)", ErrMalformedResponse, truncatePreview(data))
	}

	resp := &Response{
		Code: wire.Code.value,
		Type: wire.Type,
		Raw:  append(json.RawMessage(nil), data...),
	}
	if len(wire.Data) > 0 && !bytes.Equal(wire.Data, []byte("null")) {
		var payload any
		if err := json.Unmarshal(wire.Data, &payload); err == nil {
			if m, ok := reparseJSON(payload).(map[string]any); ok {
				resp.Data = m
				resp.Toys = toysFromData(m)
			}
		}
	}

	if resp.Code != CodeOK {
		return nil, &CommandError{Code: resp.Code, Description: codeDescriptions[resp.Code]}
	}
	return resp, nil
}

// reparseJSON undoes the app's habit of JSON-encoding nested objects as
// strings: any string value that itself parses as a JSON object or array is
// decoded in place, recursively.
func reparseJSON(v any) any {
	switch val := v.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
			return val
		}
		var nested any
		if err := json.Unmarshal([]byte(trimmed), &nested); err != nil {
			return val
		}
		return reparseJSON(nested)
	case map[string]any:
		for key, item := range val {
			val[key] = reparseJSON(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = reparseJSON(item)
		}
		return val
	default:
		return v
	}
}

// toysFromData extracts toy descriptors from a reply payload. The app keys
// toys by ID in an object; some replies carry them as a list instead.
func toysFromData(data map[string]any) []Toy {
	raw, ok := data["toys"]
	if !ok {
		return nil
	}
	switch val := raw.(type) {
	case map[string]any:
		ids := make([]string, 0, len(val))
		for id := range val {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		toys := make([]Toy, 0, len(ids))
		for _, id := range ids {
			entry, ok := val[id].(map[string]any)
			if !ok {
				continue
			}
			toy := decodeToy(entry)
			if toy.ID == "" {
				toy.ID = id
			}
			toys = append(toys, toy)
		}
		return toys
	case []any:
		var toys []Toy
		for _, item := range val {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			toys = append(toys, decodeToy(entry))
		}
		return toys
	default:
		return nil
	}
}

func decodeToy(entry map[string]any) Toy {
	var toy Toy
	// Round-trip through JSON so numeric fields land in the right types.
	if raw, err := json.Marshal(entry); err == nil {
		_ = json.Unmarshal(raw, &toy)
	}
	return toy
}

// truncatePreview returns a truncated string for error messages.
func truncatePreview(data []byte) string {
	s := string(data)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
