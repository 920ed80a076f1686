package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSVEmptyInput(t *testing.T) {
	assert.Equal(t, "", ToCSV(nil, JobColumns))
	assert.Equal(t, "", ToCSV([]map[string]interface{}{}, JobColumns))
}

func TestToCSVHeaderAndRows(t *testing.T) {
	columns := []Column{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Name"},
	}
	rows := []map[string]interface{}{
		{"id": float64(1), "name": "Jane"},
		{"id": float64(2), "name": "Bob"},
	}

	got := ToCSV(rows, columns)
	assert.Equal(t, "ID,Name\n1,Jane\n2,Bob", got)
}

func TestToCSVQuoting(t *testing.T) {
	columns := []Column{{Key: "v", Label: "Value"}}

	cases := map[string]string{
		"plain":       "plain",
		"a,b":         `"a,b"`,
		`say "hi"`:    `"say ""hi"""`,
		"line\nbreak": "\"line\nbreak\"",
		`a,b"c`:       `"a,b""c"`,
	}

	for input, want := range cases {
		got := ToCSV([]map[string]interface{}{{"v": input}}, columns)
		assert.Equal(t, "Value\n"+want, got, "input %q", input)
	}
}

func TestToCSVNilFieldsRenderEmpty(t *testing.T) {
	columns := []Column{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B"},
	}
	rows := []map[string]interface{}{{"a": "x", "b": nil}}

	assert.Equal(t, "A,B\nx,", ToCSV(rows, columns))
}

// The emitted CSV must parse back to the original values with a standard
// comma/quote CSV reader.
func TestToCSVRoundTripsThroughStandardParser(t *testing.T) {
	columns := []Column{
		{Key: "title", Label: "Title"},
		{Key: "notes", Label: "Notes"},
	}
	rows := []map[string]interface{}{
		{"title": `a,b"c`, "notes": "first line\nsecond line"},
		{"title": "plain", "notes": ""},
	}

	reader := csv.NewReader(strings.NewReader(ToCSV(rows, columns)))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"Title", "Notes"}, records[0])
	assert.Equal(t, []string{`a,b"c`, "first line\nsecond line"}, records[1])
	assert.Equal(t, []string{"plain", ""}, records[2])
}

func TestRowsFlattensTypedSlices(t *testing.T) {
	type item struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	rows, err := Rows([]item{{ID: 7, Name: "Jane"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(7), rows[0]["id"])
	assert.Equal(t, "Jane", rows[0]["name"])
}

func TestToJSONIndents(t *testing.T) {
	out, err := ToJSON(map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v\"\n}", out)
}
