package action

import (
	"fmt"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
)

// FieldType enumerates the primitive input types the schema supports.
type FieldType string

const (
	FieldString      FieldType = "string"
	FieldNumber      FieldType = "number"
	FieldBoolean     FieldType = "boolean"
	FieldStringArray FieldType = "string_array"
)

// Field declares one input field and its constraints. The descriptor is
// plain data: the same value drives runtime validation, conversion to the
// transport's tool schema and documentation output.
type Field struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required,omitempty"`
	// MinLen applies to string fields.
	MinLen int `json:"minLen,omitempty"`
	// Positive applies to number fields.
	Positive bool `json:"positive,omitempty"`
	// Message overrides the default constraint-violation message.
	Message string `json:"message,omitempty"`
}

// Schema is the declarative input contract of an action.
type Schema struct {
	Fields []Field `json:"fields"`
}

func (f Field) violation(format string, args ...any) error {
	if f.Message != "" {
		return apperr.New(apperr.CodeUsage, f.Message)
	}
	return apperr.New(apperr.CodeUsage, fmt.Sprintf(format, args...))
}

// Validate checks args against the schema and returns the validated input.
// String arrays arrive from JSON as []any and are rewritten as []string.
// Unknown fields are dropped.
func (s Schema) Validate(args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw, present := args[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, f.violation("missing required field %s", f.Name)
			}
			continue
		}

		switch f.Type {
		case FieldString:
			v, ok := raw.(string)
			if !ok {
				return nil, f.violation("field %s must be a string", f.Name)
			}
			if f.MinLen > 0 && len(v) < f.MinLen {
				return nil, f.violation("field %s must be at least %d characters", f.Name, f.MinLen)
			}
			out[f.Name] = v
		case FieldNumber:
			v, ok := toFloat(raw)
			if !ok {
				return nil, f.violation("field %s must be a number", f.Name)
			}
			if f.Positive && v <= 0 {
				return nil, f.violation("field %s must be positive", f.Name)
			}
			out[f.Name] = v
		case FieldBoolean:
			v, ok := raw.(bool)
			if !ok {
				return nil, f.violation("field %s must be a boolean", f.Name)
			}
			out[f.Name] = v
		case FieldStringArray:
			items, ok := toStringSlice(raw)
			if !ok {
				return nil, f.violation("field %s must be an array of strings", f.Name)
			}
			out[f.Name] = items
		default:
			return nil, apperr.New(apperr.CodeInternal, fmt.Sprintf("unknown field type %q for %s", f.Type, f.Name))
		}
	}
	return out, nil
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toStringSlice(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
