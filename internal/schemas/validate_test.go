package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validState = `{
	"resumes": [{
		"id": "r1",
		"title": "Backend",
		"currentVersionId": "v1",
		"isArchived": false,
		"createdAt": 1700000000000,
		"versions": [{
			"id": "v1",
			"name": "V1.0",
			"createdAt": 1700000000000,
			"updatedAt": 1700000000000,
			"document": {
				"basics": {"name": "Alex", "profiles": []},
				"sections": [{
					"id": "s1", "type": "experience", "title": "Experience", "isVisible": true,
					"items": [{"id": "i1", "company": "Acme", "current": true, "bullets": ["Shipped 3 things"]}]
				}]
			},
			"settings": {"templateId": "minimalist", "atsSafeLock": true}
		}]
	}],
	"currentResumeId": "r1",
	"activeVersionId": "v1"
}`

func TestValidateState_Valid(t *testing.T) {
	assert.NoError(t, ValidateState([]byte(validState)))
	assert.NoError(t, ValidateState([]byte(`{"resumes": []}`)))
}

func TestValidateState_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "missing resumes", json: `{"currentResumeId": "r1"}`},
		{name: "resume without versions", json: `{"resumes": [{"id": "r1", "currentVersionId": "v1", "versions": []}]}`},
		{name: "item bullets wrong type", json: `{"resumes": [{"id": "r1", "currentVersionId": "v1", "versions": [{
			"id": "v1", "settings": {"templateId": "x"},
			"document": {"basics": {}, "sections": [{"id": "s", "type": "skills", "items": [{"id": "i", "bullets": "nope"}]}]}
		}]}]}`},
		{name: "empty template id", json: `{"resumes": [{"id": "r1", "currentVersionId": "v1", "versions": [{
			"id": "v1", "settings": {"templateId": ""}, "document": {"basics": {}, "sections": []}
		}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateState([]byte(tt.json))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateState_Malformed(t *testing.T) {
	err := ValidateState([]byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(path, []byte(validState), 0644))

	assert.NoError(t, ValidateStateFile(path))

	err := ValidateStateFile(filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "Go"}`))

	err := ValidateJSONString(schema, `{"name": 3}`)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "name", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Error(), "validation failed")
}
