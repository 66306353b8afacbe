package notifycenter

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadPreferences reads a YAML document mapping user IDs to preference
// records and stores each record with SetPreferences:
//
//	u1:
//	  email: true
//	  push: false
//	u2:
//	  sms: 0
//
// Scalar values keep their decoded YAML type, so only a literal false opts a
// user out. Users are applied in lexical order. An empty document is a no-op.
func (c *Center) LoadPreferences(r io.Reader) error {
	var doc map[string]Preferences
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	for _, userID := range slices.Sorted(maps.Keys(doc)) {
		c.SetPreferences(userID, doc[userID])
	}
	return nil
}

// DumpPreferences writes every stored preference record as YAML.
// Defaulted users are not included.
func (c *Center) DumpPreferences(w io.Writer) error {
	c.mu.RLock()
	doc := make(map[string]Preferences, len(c.preferences))
	for id, p := range c.preferences {
		doc[id] = p.clone()
	}
	c.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return enc.Close()
}
