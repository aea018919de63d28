package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/samber/lo"
)

// AddressRegistry maps network keys to the addresses ever recorded for a contract.
// Keys keep the order in which they were first seen, and so do the addresses under
// each key. Entries are only ever appended.
type AddressRegistry struct {
	keys    []string
	entries map[string][]string
}

// NewAddressRegistry returns an empty registry.
func NewAddressRegistry() *AddressRegistry {
	return &AddressRegistry{entries: make(map[string][]string)}
}

// ParseAddressRegistry decodes a registry file. Empty or whitespace-only content is an
// empty registry.
func ParseAddressRegistry(data []byte) (*AddressRegistry, error) {
	r := NewAddressRegistry()
	if len(bytes.TrimSpace(data)) == 0 {
		return r, nil
	}
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}

// Add records address under network. It reports false when the address was already
// recorded there.
func (r *AddressRegistry) Add(network NetworkID, address string) bool {
	if r.entries == nil {
		r.entries = make(map[string][]string)
	}

	key := network.Key()
	existing, ok := r.entries[key]
	if !ok {
		r.keys = append(r.keys, key)
		r.entries[key] = []string{address}
		return true
	}
	if lo.Contains(existing, address) {
		return false
	}
	r.entries[key] = append(existing, address)
	return true
}

// Addresses returns a copy of the addresses recorded under network.
func (r *AddressRegistry) Addresses(network NetworkID) []string {
	addrs := r.entries[network.Key()]
	out := make([]string, len(addrs))
	copy(out, addrs)
	return out
}

// Latest returns the most recently recorded address for network.
func (r *AddressRegistry) Latest(network NetworkID) (string, bool) {
	return lo.Last(r.entries[network.Key()])
}

// Networks returns the recorded networks in key order.
func (r *AddressRegistry) Networks() []NetworkID {
	return lo.Map(r.keys, func(key string, _ int) NetworkID {
		// keys are validated on the way in
		id, _ := ParseNetworkKey(key)
		return id
	})
}

// Len returns the number of networks in the registry.
func (r *AddressRegistry) Len() int {
	return len(r.keys)
}

// MarshalJSON writes the registry as a compact object in key order.
func (r *AddressRegistry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		addrs := r.entries[key]
		if addrs == nil {
			addrs = []string{}
		}
		v, err := json.Marshal(addrs)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a registry object, rejecting anything that is not a mapping
// from decimal network identifiers to arrays of distinct address strings. Invalid
// UTF-8 is rejected rather than replaced so that a rewrite never alters stored bytes.
func (r *AddressRegistry) UnmarshalJSON(data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("registry is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("invalid registry JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry must be a JSON object, got %v", describeToken(tok))
	}

	keys := []string{}
	entries := make(map[string][]string)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("invalid registry JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("invalid registry key %v", tok)
		}
		if _, err := ParseNetworkKey(key); err != nil {
			return err
		}
		if _, dup := entries[key]; dup {
			return fmt.Errorf("duplicate network identifier %q", key)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("invalid registry JSON under %q: %w", key, err)
		}
		addrs, err := decodeAddressList(raw)
		if err != nil {
			return fmt.Errorf("network %s: %w", key, err)
		}

		keys = append(keys, key)
		entries[key] = addrs
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("invalid registry JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after registry object")
	}

	r.keys = keys
	r.entries = entries
	return nil
}

func decodeAddressList(raw json.RawMessage) ([]string, error) {
	var values []any
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("addresses must be a JSON array")
	}
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("address at index %d is not a string", i)
		}
		if lo.Contains(addrs, s) {
			return nil, fmt.Errorf("duplicate address %q at index %d", s, i)
		}
		addrs = append(addrs, s)
	}
	return addrs, nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return string(v)
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
