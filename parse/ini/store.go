package ini

// =========================
// Store
// =========================

// Entry is one parsed assignment. Section is empty for global entries.
type Entry struct {
	Key     string
	Section string
	Value   *Value
}

// Limits bounds what the parser and validator accept.
type Limits struct {
	MaxEntries    int
	MaxArrayElems int
	MaxKeyLen     int
	MaxStringLen  int
}

// DefaultLimits returns the stock ceilings: 1000 entries, 100 array elements,
// 256-byte keys and section names, 1024-byte string values.
func DefaultLimits() Limits {
	return Limits{
		MaxEntries:    1000,
		MaxArrayElems: 100,
		MaxKeyLen:     256,
		MaxStringLen:  1024,
	}
}

// Config is the parse artifact: an insertion-ordered sequence of entries plus
// the query API. Entries are append-only during parsing and never mutated
// afterward. Duplicate keys may coexist; lookups return the first match in
// insertion order.
type Config struct {
	entries []Entry
	limits  Limits
}

func newConfig(limits Limits) *Config {
	return &Config{limits: limits}
}

// append adds an entry, refusing once MaxEntries is reached.
func (c *Config) append(e Entry) error {
	if len(c.entries) >= c.limits.MaxEntries {
		return perr(ErrCapacityExceeded, "maximum of %d entries exceeded", c.limits.MaxEntries)
	}
	c.entries = append(c.entries, e)
	return nil
}

// Len returns the number of stored entries.
func (c *Config) Len() int { return len(c.entries) }

// Entries returns the stored entries in insertion order. Callers must treat
// the slice as read-only.
func (c *Config) Entries() []Entry { return c.entries }

// =========================
// Query API
// =========================

// Lookup returns the value of the first entry with the given key, in any
// section.
func (c *Config) Lookup(key string) (*Value, bool) {
	for i := range c.entries {
		if c.entries[i].Key == key {
			return c.entries[i].Value, true
		}
	}
	return nil, false
}

// LookupIn scopes the lookup to one section. The empty section matches only
// global entries.
func (c *Config) LookupIn(section, key string) (*Value, bool) {
	for i := range c.entries {
		if c.entries[i].Key == key && c.entries[i].Section == section {
			return c.entries[i].Value, true
		}
	}
	return nil, false
}

// GetString returns the key's string value, or def when the key is absent or
// holds a different type. The typed getters never coerce between types.
func (c *Config) GetString(key, def string) string {
	if v, ok := c.Lookup(key); ok && v.Type == TypeString {
		return v.V.(string)
	}
	return def
}

func (c *Config) GetInt(key string, def int64) int64 {
	if v, ok := c.Lookup(key); ok && v.Type == TypeInteger {
		return v.V.(int64)
	}
	return def
}

func (c *Config) GetFloat(key string, def float64) float64 {
	if v, ok := c.Lookup(key); ok && v.Type == TypeFloat {
		return v.V.(float64)
	}
	return def
}

func (c *Config) GetBool(key string, def bool) bool {
	if v, ok := c.Lookup(key); ok && v.Type == TypeBoolean {
		return v.V.(bool)
	}
	return def
}

// =========================
// Untyped Export
// =========================

// ToUntyped flattens the config into plain maps for export: global entries at
// the top level, sectioned entries nested under their section name. For
// duplicate keys the first entry wins, matching Lookup.
func (c *Config) ToUntyped() map[string]any {
	out := make(map[string]any)
	for i := range c.entries {
		e := &c.entries[i]
		m := out
		if e.Section != "" {
			sub, ok := out[e.Section].(map[string]any)
			if !ok {
				if _, taken := out[e.Section]; taken {
					// a global key already claimed the section's name
					continue
				}
				sub = make(map[string]any)
				out[e.Section] = sub
			}
			m = sub
		}
		if _, taken := m[e.Key]; taken {
			continue
		}
		m[e.Key] = untypedValue(e.Value)
	}
	return out
}

func untypedValue(v *Value) any {
	if v.Type == TypeArray {
		elems := v.V.([]Value)
		out := make([]any, len(elems))
		for i := range elems {
			out[i] = elems[i].V
		}
		return out
	}
	return v.V
}
