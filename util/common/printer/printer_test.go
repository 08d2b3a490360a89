package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harness/yrm/internal/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name     string `json:"name"`
	Registry string `json:"registry"`
	Home     string `json:"home,omitempty"`
}

func TestParseTableData_Mapping(t *testing.T) {
	headers, rows, err := parseTableData(
		`[{"name":"npm","registry":"https://registry.npmjs.org/"},{"name":"x"}]`,
		ColumnMapping{{"name", "Name"}, {"registry", "Registry"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Registry"}, headers)
	assert.Equal(t, [][]string{
		{"npm", "https://registry.npmjs.org/"},
		{"x", "-"},
	}, rows)
}

func TestParseTableData_Alphabetical(t *testing.T) {
	headers, rows, err := parseTableData(`[{"b":1,"a":"x"}]`, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, headers)
	assert.Equal(t, [][]string{{"x", "1"}}, rows)
}

func TestParseTableData_Empty(t *testing.T) {
	headers, rows, err := parseTableData(`[]`, nil)
	require.NoError(t, err)
	assert.Nil(t, headers)
	assert.Nil(t, rows)
}

func TestPrintTable_Plain(t *testing.T) {
	style.Init(false)
	defer style.Init(true)

	var buf bytes.Buffer
	err := PrintTable(&buf, []record{{Name: "yarn", Registry: "https://registry.yarnpkg.com/"}},
		ColumnMapping{{"name", "Name"}, {"registry", "Registry"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Name")
	assert.Contains(t, buf.String(), "https://registry.yarnpkg.com/")
}

func TestPrintTable_NoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, []record{}, nil))
	assert.Empty(t, buf.String())
}

func TestPrintJson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJson(&buf, record{Name: "npm", Registry: "https://registry.npmjs.org/?a=b&c"}))
	assert.Equal(t, "{\n  \"name\": \"npm\",\n  \"registry\": \"https://registry.npmjs.org/?a=b&c\"\n}\n", buf.String())
}

func TestPrintJsonWithOptions_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJsonWithOptions(&buf, []string{"a"}, JsonOptions{}))
	assert.Equal(t, `["a"]`, strings.TrimSpace(buf.String()))
}
