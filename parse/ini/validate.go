package ini

// =========================
// Validation
// =========================

// validKey reports whether s satisfies the key grammar: non-empty, at most
// max bytes, first character a letter or underscore, the rest letters,
// digits, underscores or dots. Section names share the same grammar.
func validKey(s string, max int) bool {
	if s == "" || len(s) > max {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// Validate re-checks every stored entry against the key grammar and the size
// limits, returning the first violation found. The global (empty) section is
// always valid.
func (c *Config) Validate() error {
	for i := range c.entries {
		e := &c.entries[i]
		if !validKey(e.Key, c.limits.MaxKeyLen) {
			return perr(ErrInvalidKey, "invalid key %q", e.Key)
		}
		if e.Section != "" && !validKey(e.Section, c.limits.MaxKeyLen) {
			return perr(ErrInvalidKey, "invalid section %q for key %q", e.Section, e.Key)
		}
		if err := c.validateValue(e); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateValue(e *Entry) error {
	switch e.Value.Type {
	case TypeString:
		if len(e.Value.V.(string)) > c.limits.MaxStringLen {
			return perr(ErrValidation, "value of key %q exceeds %d bytes", e.Key, c.limits.MaxStringLen)
		}
	case TypeArray:
		if n := len(e.Value.V.([]Value)); n == 0 || n > c.limits.MaxArrayElems {
			return perr(ErrValidation, "array of key %q has invalid element count %d", e.Key, n)
		}
	}
	return nil
}
