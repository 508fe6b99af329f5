package vault

import (
	"encoding/json"
	"fmt"
)

// payload is the canonical plaintext envelope. The field name is
// load-bearing: stores written by earlier versions use the same encoding,
// so legacy blobs decode without translation.
type payload struct {
	Passwords map[string]string `json:"passwords"`
}

func encodePayload(passwords map[string]string) ([]byte, error) {
	data, err := json.Marshal(payload{Passwords: passwords})
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

func decodePayload(data []byte) (map[string]string, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %v: %w", err, ErrCorrupt)
	}
	if p.Passwords == nil {
		p.Passwords = make(map[string]string)
	}
	return p.Passwords, nil
}
