/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding/json"
	"fmt"
)

// EncodeBlob packages the registered attributes of entity into a single
// opaque blob suitable for a key-value store slot. The blob is the bridge
// between the attribute-level codec and stores that persist one value per
// entity.
func EncodeBlob[T any](entity *T) ([]byte, error) {
	w := NewMapWriter()
	if err := Encode(entity, w); err != nil {
		return nil, err
	}
	data, err := json.Marshal(w.Values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attribute map: %w", err)
	}
	return data, nil
}

// DecodeBlob reconstructs an entity from a blob previously produced by
// EncodeBlob. Attributes missing from the blob keep their defaults, so blobs
// written before an attribute was declared still decode.
func DecodeBlob[T any](data []byte) (*T, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attribute map: %w", err)
	}
	return Decode[T](MapReader(values))
}
