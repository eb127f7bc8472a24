package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_UnmarshalCommaString(t *testing.T) {
	var s StringList
	err := json.Unmarshal([]byte(`"a, b ,,c"`), &s)
	assert.NoError(t, err)
	assert.Equal(t, StringList{"a", "b", "c"}, s)
}

func TestStringList_UnmarshalArray(t *testing.T) {
	var s StringList
	err := json.Unmarshal([]byte(`["react", " node ", ""]`), &s)
	assert.NoError(t, err)
	assert.Equal(t, StringList{"react", "node"}, s)
}

func TestStringList_UnmarshalEmptyString(t *testing.T) {
	var s StringList
	err := json.Unmarshal([]byte(`""`), &s)
	assert.NoError(t, err)
	assert.Empty(t, s)
}

func TestStringList_UnmarshalNull(t *testing.T) {
	// null decodes as an empty array, not an error, so an explicit
	// {"tags": null} clears the field instead of failing the request
	var s StringList
	err := json.Unmarshal([]byte(`null`), &s)
	assert.NoError(t, err)
	assert.Empty(t, s)
}

func TestStringList_UnmarshalWrongType(t *testing.T) {
	var s StringList
	err := json.Unmarshal([]byte(`42`), &s)
	assert.Error(t, err)
}

func TestStringList_InsideStruct(t *testing.T) {
	var payload struct {
		Tags StringList `json:"tags"`
	}

	err := json.Unmarshal([]byte(`{"tags":"go,chi , mongo"}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, StringList{"go", "chi", "mongo"}, payload.Tags)

	err = json.Unmarshal([]byte(`{"tags":["go","mongo"]}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, StringList{"go", "mongo"}, payload.Tags)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAndTrim(" a ", "", "b"))
	assert.Equal(t, []string{}, SplitAndTrim())
}
