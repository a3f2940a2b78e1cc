package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"level": {"type": "integer", "minimum": 1},
		"costs": {
			"type": "object",
			"propertyNames": {"pattern": "^[0-9]+$"},
			"additionalProperties": {"type": "integer"}
		}
	},
	"required": ["name"]
}`

func newTestValidator(t *testing.T) SchemaValidator {
	t.Helper()
	v, err := NewSchemaValidator("test.schema.json", []byte(testSchema))
	require.NoError(t, err)
	return v
}

func TestNewSchemaValidator_InvalidSchema(t *testing.T) {
	_, err := NewSchemaValidator("broken.json", []byte(`{"type": `))
	assert.Error(t, err)

	_, err = NewSchemaValidator("bad-type.json", []byte(`{"type": "banana"}`))
	assert.Error(t, err)
}

func TestValidateYAML(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		contains string
	}{
		{"valid", "name: Peito\nlevel: 3\n", false, ""},
		{"integer map keys", "name: Peito\ncosts:\n  4: 1\n  8: 3\n", false, ""},
		{"missing required", "level: 3\n", true, "required"},
		{"wrong type", "name: Peito\nlevel: tres\n", true, "/level"},
		{"below minimum", "name: Peito\nlevel: 0\n", true, "minimum"},
		{"malformed", "name: [unclosed\n", true, "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateYAML([]byte(tt.data))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateJSON(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.ValidateJSON([]byte(`{"name": "Arma", "level": 16}`)))

	err := v.ValidateJSON([]byte(`{"name": 7}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, err.Error(), "/name")

	assert.Error(t, v.ValidateJSON([]byte(`not json`)))
}
