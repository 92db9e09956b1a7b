package ini

import (
	"fmt"
	"strconv"
	"strings"
)

// =========================
// Value Model
// =========================

type Type uint8

const (
	TypeNull Type = iota
	TypeString
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeArray
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeArray:
		return "array"
	default:
		return "null"
	}
}

// Value is a tagged union over the supported types. V holds string, int64,
// float64, bool or []Value depending on Type. Elem is the shared element type
// when Type is TypeArray.
type Value struct {
	Type Type
	V    any
	Elem Type
}

// String renders the value in config-file notation: strings quoted, arrays
// bracketed and comma-separated.
func (v Value) String() string {
	switch v.Type {
	case TypeString:
		return fmt.Sprintf("\"%s\"", v.V)
	case TypeInteger:
		return strconv.FormatInt(v.V.(int64), 10)
	case TypeFloat:
		return strconv.FormatFloat(v.V.(float64), 'g', -1, 64)
	case TypeBoolean:
		if v.V.(bool) {
			return "true"
		}
		return "false"
	case TypeArray:
		elems := v.V.([]Value)
		parts := make([]string, len(elems))
		for i := range elems {
			parts[i] = elems[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "(null)"
	}
}

// =========================
// Type Inference
// =========================

// InferType decides the type of a raw value string by trial parsing, in fixed
// precedence: empty, array, boolean, integer, float, string. A numeric probe
// matches only when it consumes the entire string, so "123abc" is a string.
func InferType(s string) Type {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeNull
	}
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		return TypeArray
	}
	if isBoolLiteral(s) {
		return TypeBoolean
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TypeInteger
	}
	if _, err := parseFloatToken(s); err == nil {
		return TypeFloat
	}
	return TypeString
}

// parseFloatToken parses a decimal floating-point literal. strconv.ParseFloat
// accepts Go-style underscore digit separators; the config grammar does not.
func parseFloatToken(s string) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

func isBoolLiteral(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false") ||
		strings.EqualFold(s, "yes") || strings.EqualFold(s, "no")
}

func boolLiteralValue(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "yes")
}

// =========================
// Value Parsing
// =========================

// ParseValue converts a raw value string into a typed Value under the given
// limits. An empty value is stored as the empty string. Quotes around plain
// strings are stripped one layer deep, with no escape processing.
func ParseValue(s string, limits Limits) (*Value, error) {
	trimmed := strings.TrimSpace(s)

	switch InferType(trimmed) {
	case TypeBoolean:
		return &Value{Type: TypeBoolean, V: boolLiteralValue(trimmed)}, nil

	case TypeInteger:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, perr(ErrUnparsableValue, "bad integer %q", trimmed)
		}
		return &Value{Type: TypeInteger, V: n}, nil

	case TypeFloat:
		f, err := parseFloatToken(trimmed)
		if err != nil {
			return nil, perr(ErrUnparsableValue, "bad float %q", trimmed)
		}
		return &Value{Type: TypeFloat, V: f}, nil

	case TypeArray:
		return parseArray(trimmed, limits)

	default:
		return &Value{Type: TypeString, V: unquote(trimmed)}, nil
	}
}

// parseArray parses "[a, b, c]". The element type is inferred from the first
// non-empty token and applied to every token; tokens that fail to parse under
// that type fall back to strings. Commas inside quoted elements are not
// supported. Arrays with zero tokens or more than MaxArrayElems tokens are
// rejected.
func parseArray(s string, limits Limits) (*Value, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, perr(ErrUnparsableValue, "malformed array %q", s)
	}
	content := s[1 : len(s)-1]

	var elems []Value
	elemType := TypeNull
	for _, tok := range strings.Split(content, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if len(elems) == 0 {
			elemType = inferElemType(tok)
		}
		if len(elems) >= limits.MaxArrayElems {
			return nil, perr(ErrArraySizeExceeded, "array exceeds %d elements", limits.MaxArrayElems)
		}
		elems = append(elems, parseElement(tok, elemType))
	}

	if len(elems) == 0 {
		return nil, perr(ErrUnparsableValue, "empty array")
	}
	return &Value{Type: TypeArray, V: elems, Elem: elemType}, nil
}

// inferElemType infers an array's element type from its first token. Arrays
// hold scalars only, so a non-scalar inference normalizes to string.
func inferElemType(tok string) Type {
	switch t := InferType(tok); t {
	case TypeInteger, TypeFloat, TypeBoolean:
		return t
	default:
		return TypeString
	}
}

func parseElement(tok string, elemType Type) Value {
	switch elemType {
	case TypeInteger:
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Value{Type: TypeInteger, V: n}
		}
	case TypeFloat:
		if f, err := parseFloatToken(tok); err == nil {
			return Value{Type: TypeFloat, V: f}
		}
	case TypeBoolean:
		if isBoolLiteral(tok) {
			return Value{Type: TypeBoolean, V: boolLiteralValue(tok)}
		}
	}
	return Value{Type: TypeString, V: unquote(tok)}
}

// unquote strips exactly one layer of double quotes when the string is
// wrapped in a matching pair.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
