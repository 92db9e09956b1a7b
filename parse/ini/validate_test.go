package ini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidKeyGrammar(t *testing.T) {
	max := DefaultLimits().MaxKeyLen
	valid := []string{"a", "_", "key", "_key", "Key9", "db.host", "a_b.c_d"}
	for _, k := range valid {
		assert.True(t, validKey(k, max), "expected %q to be valid", k)
	}

	invalid := []string{"", "9key", ".key", "-key", "key-name", "key name", "key!", "键"}
	for _, k := range invalid {
		assert.False(t, validKey(k, max), "expected %q to be invalid", k)
	}

	assert.True(t, validKey(strings.Repeat("a", max), max))
	assert.False(t, validKey(strings.Repeat("a", max+1), max))
}

func TestValidateFlagsOverlongKey(t *testing.T) {
	limits := DefaultLimits()
	c := newConfig(limits)
	require.NoError(t, c.append(Entry{Key: "fine", Value: &Value{Type: TypeInteger, V: int64(1)}}))
	require.NoError(t, c.append(Entry{
		Key:   strings.Repeat("k", limits.MaxKeyLen+1),
		Value: &Value{Type: TypeInteger, V: int64(2)},
	}))

	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidKey)
	// both entries were stored; validation does not unwind the store
	assert.Equal(t, 2, c.Len())
}

func TestValidateFlagsBadSectionName(t *testing.T) {
	// section names are only syntax-checked post-parse
	cfg, err := NewParser(true).ParseString("[my-section]\nkey = 1\n")
	require.NoError(t, err)

	err = cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Contains(t, err.Error(), "my-section")
}

func TestValidateFlagsOverlongString(t *testing.T) {
	p := NewParser(true)
	p.Limits.MaxStringLen = 8
	cfg, err := p.ParseString("short = ok\nlong = abcdefghijklmnop\n")
	require.NoError(t, err)

	err = cfg.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "long")
}

func TestValidateFlagsBadArrayCount(t *testing.T) {
	c := newConfig(DefaultLimits())
	require.NoError(t, c.append(Entry{
		Key:   "empty",
		Value: &Value{Type: TypeArray, V: []Value{}, Elem: TypeString},
	}))

	err := c.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidateIsFailFast(t *testing.T) {
	c := newConfig(DefaultLimits())
	require.NoError(t, c.append(Entry{Key: "1first", Value: &Value{Type: TypeInteger, V: int64(1)}}))
	require.NoError(t, c.append(Entry{Key: "2second", Value: &Value{Type: TypeInteger, V: int64(2)}}))

	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Contains(t, err.Error(), "1first")
	assert.NotContains(t, err.Error(), "2second")
}

func TestValidatePassesCleanConfig(t *testing.T) {
	src := "[server]\nport = 8080\nname = \"demo\"\ntags = [\"a\", \"b\"]\n"
	cfg, err := NewParser(true).ParseString(src)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
