// Package api defines the JSON messages exchanged with the dormshare Connect
// services.
//
// Money travels as decimal strings with two places ("300.00"); timestamps
// are Unix seconds.
package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name; it serves application/json and
// application/connect+json.
const CodecName = "json"

// Codec is a connect.Codec backed by encoding/json. The messages in this
// package are plain structs, so the default protobuf codecs do not apply.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}
