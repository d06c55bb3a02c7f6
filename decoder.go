package microya

import (
	json "github.com/goccy/go-json"
)

// Decoder converts raw response bytes into a typed value. The same decoder
// is used for success bodies and client-error bodies of one endpoint.
type Decoder interface {
	Decode(data []byte, v any) error
}

// JSONDecoder decodes response bodies as JSON.
type JSONDecoder struct{}

// Decode implements Decoder.
func (JSONDecoder) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
