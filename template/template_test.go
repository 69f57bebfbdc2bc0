package template

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"strings"
	"testing"
)

type column struct {
	Name      string
	RefName   string
	SparkType string
	Nullable  string
}

func TestService_Render(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	baseURL := "mem://localhost/templates/case001"
	require.Nil(t, fs.Upload(ctx, baseURL+"/pyspark/data_class.vm", file.DefaultFileOsMode,
		strings.NewReader("class ${TableName}:\r\n#foreach($column in $Columns)\r\n    ${column.RefName} = \"${column.Name}\"\r\n#end\r\n")))

	testCases := []struct {
		description string
		options     []Option
		id          ID
		variables   map[string]interface{}
		contains    []string
		expectErr   error
	}{
		{
			description: "embedded template",
			id:          PySparkDataClass,
			variables: map[string]interface{}{
				"TableName": "Test",
				"Columns":   []*column{{Name: "IdCol", RefName: "id_col", SparkType: "StringType()", Nullable: "False"}},
			},
			contains: []string{"class Test:", `    id_col = "IdCol"`, `StructField("IdCol", StringType(), False),`},
		},
		{
			description: "base url template",
			options:     []Option{WithBaseURL(baseURL), WithFs(fs)},
			id:          PySparkDataClass,
			variables: map[string]interface{}{
				"TableName": "Test",
				"Columns":   []*column{{Name: "IdCol", RefName: "id_col"}},
			},
			contains: []string{"class Test:\n", `    id_col = "IdCol"`},
		},
		{
			description: "missing base url template",
			options:     []Option{WithBaseURL(baseURL), WithFs(fs)},
			id:          PyDeequColumnLevelCheck,
			expectErr:   ErrNotFound,
		},
		{
			description: "missing embedded template",
			id:          ID("great_expectations/suite"),
			expectErr:   ErrNotFound,
		},
	}

	for _, testCase := range testCases {
		service := New(testCase.options...)
		actual, err := service.Render(ctx, testCase.id, testCase.variables)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.NotContains(t, actual, "\r", testCase.description)
		for _, fragment := range testCase.contains {
			assert.Contains(t, actual, fragment, testCase.description)
		}
	}
}
