package model

// TableRef represents table reference
type TableRef struct {
	Name   string
	Schema string
	Alias  string
}

func (r *TableRef) String() string {
	if r.Schema == "" {
		return r.Name
	}
	return r.Schema + "." + r.Name
}

// TableDef represents validated table definition
type TableDef struct {
	TableRef TableRef
	Columns  []*ColumnDef
}

// Validate validates all columns
func (t *TableDef) Validate() error {
	for _, column := range t.Columns {
		if err := column.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Column returns column by name
func (t *TableDef) Column(name string) *ColumnDef {
	for _, column := range t.Columns {
		if column.Name == name {
			return column
		}
	}
	return nil
}
