package navzone

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeJSON writes the zone as JSON.
func (z *Zone) EncodeJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(z)
}

// DecodeJSON reads a zone previously written by EncodeJSON.
func DecodeJSON(r io.Reader) (*Zone, error) {
	var z Zone
	if err := json.NewDecoder(r).Decode(&z); err != nil {
		return nil, err
	}
	return &z, nil
}

// EncodeMsgpack writes the zone in msgpack, the compact cache format used by
// zonetool.
func (z *Zone) EncodeMsgpack(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(z)
}

// DecodeMsgpack reads a zone previously written by EncodeMsgpack.
func DecodeMsgpack(r io.Reader) (*Zone, error) {
	var z Zone
	if err := msgpack.NewDecoder(r).Decode(&z); err != nil {
		return nil, err
	}
	return &z, nil
}
