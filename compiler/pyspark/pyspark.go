package pyspark

import (
	"context"
	"fmt"
	"github.com/viant/ddlx/model"
	"github.com/viant/ddlx/template"
	"strings"
	"unicode"
)

// Target represents PySpark target name
const Target = "pyspark"

type (
	//Renderer renders template with variables
	Renderer interface {
		Render(ctx context.Context, id template.ID, variables map[string]interface{}) (string, error)
	}

	//Column represents PySpark class attribute and schema field
	Column struct {
		Name      string
		RefName   string
		NotNull   bool
		DataClass model.DataClass
		SparkType string
		Nullable  string
	}

	//Compiler lowers table definition into PySpark schema class
	Compiler struct {
		renderer Renderer
	}
)

// Compile renders schema class for the table
func (c *Compiler) Compile(ctx context.Context, table *model.TableDef) (string, error) {
	columns := make([]*Column, 0, len(table.Columns))
	for _, column := range table.Columns {
		columns = append(columns, NewColumn(column))
	}
	return c.renderer.Render(ctx, template.PySparkDataClass, map[string]interface{}{
		"TableName": TableName(&table.TableRef),
		"Columns":   columns,
	})
}

// NewColumn creates PySpark column for column definition
func NewColumn(column *model.ColumnDef) *Column {
	ret := &Column{
		Name:      column.Name,
		RefName:   ToSnakeCase(column.Name),
		NotNull:   column.NotNull,
		DataClass: column.DataType.Class,
		SparkType: SparkType(&column.DataType),
		Nullable:  "True",
	}
	if ret.DataClass.IsStringLike() {
		ret.DataClass = model.String
	}
	if ret.NotNull {
		ret.Nullable = "False"
	}
	return ret
}

// TableName returns class name, schema separator is removed
func TableName(ref *model.TableRef) string {
	return strings.ReplaceAll(ref.String(), ".", "")
}

// ToSnakeCase inserts '_' before every upper case letter except the first one and lowers it
func ToSnakeCase(name string) string {
	sb := strings.Builder{}
	for i, r := range []rune(name) {
		if unicode.IsUpper(r) {
			if i != 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SparkType returns pyspark.sql.types constructor for data type
func SparkType(dataType *model.DataType) string {
	class := dataType.Class
	switch {
	case class.IsStringLike():
		return "StringType()"
	case class.IsBooleanLike():
		return "BooleanType()"
	}
	switch class {
	case model.TinyInt:
		return "ByteType()"
	case model.SmallInt:
		return "ShortType()"
	case model.MediumInt, model.Int, model.Integer, model.Year:
		return "IntegerType()"
	case model.BigInt:
		return "LongType()"
	case model.Float:
		return "FloatType()"
	case model.Double, model.DoublePrecision:
		return "DoubleType()"
	case model.Decimal, model.Dec:
		precision, hasPrecision := dataType.Precision()
		scale, hasScale := dataType.Scale()
		if hasPrecision && hasScale {
			return fmt.Sprintf("DecimalType(%v, %v)", precision, scale)
		}
		return "DecimalType()"
	case model.Date:
		return "DateType()"
	case model.DateTime, model.Timestamp:
		return "TimestampType()"
	}
	return "StringType()"
}

// New creates PySpark compiler
func New(renderer Renderer) *Compiler {
	return &Compiler{renderer: renderer}
}
