package bft

import (
	"bytes"
)

// Unmarshal parses data and returns the tree it describes.
func Unmarshal(data []byte, opts ...DecodeOption) (*Tree, error) {
	t := &Tree{}
	if err := NewDecoder(bytes.NewReader(data), opts...).Decode(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Marshal returns the canonical encoding of t.
func Marshal(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
