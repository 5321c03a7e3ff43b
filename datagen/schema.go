package datagen

import (
	"strings"

	"github.com/pingcap/errors"
)

// ColumnSpec declares one synthesized column.
type ColumnSpec struct {
	Name string     `toml:"name"`
	Type ColumnType `toml:"type"`
	// Unique asks for sampling without replacement.
	Unique bool `toml:"unique"`
}

// Schema is the ordered list of columns to synthesize.
type Schema []ColumnSpec

// Validate checks the schema is non-empty and every column is named and typed.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return errors.Annotate(ErrInvalidInput, "empty schema")
	}
	for i, col := range s {
		if strings.TrimSpace(col.Name) == "" {
			return errors.Annotatef(ErrInvalidInput, "column #%d has an empty name", i+1)
		}
		if _, ok := typeNameMap[col.Type]; !ok {
			return errors.Annotatef(ErrInvalidInput, "column %v has unknown type=%d", col.Name, int(col.Type))
		}
	}
	return nil
}

// Names returns the column names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, col := range s {
		names = append(names, col.Name)
	}
	return names
}

func (s Schema) String() string {
	cols := make([]string, 0, len(s))
	for _, col := range s {
		c := col.Name + ":" + col.Type.String()
		if col.Unique {
			c += ":unique"
		}
		cols = append(cols, c)
	}
	return strings.Join(cols, ",")
}

// ParseSchema parses the textual schema form
//	name:type[:unique],name:type[:unique]...
// e.g. "id:integer:unique,score:float,grp:category".
func ParseSchema(text string) (Schema, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Annotate(ErrInvalidInput, "empty schema")
	}
	defs := strings.Split(text, ",")
	schema := make(Schema, 0, len(defs))
	for _, def := range defs {
		tmp := strings.Split(strings.TrimSpace(def), ":")
		if len(tmp) < 2 || len(tmp) > 3 {
			return nil, errors.Annotatef(ErrInvalidInput, "invalid column definition=%v", def)
		}
		tp, err := ParseColumnType(tmp[1])
		if err != nil {
			return nil, err
		}
		col := ColumnSpec{Name: strings.TrimSpace(tmp[0]), Type: tp}
		if len(tmp) == 3 {
			switch strings.ToLower(strings.TrimSpace(tmp[2])) {
			case "unique", "u":
				col.Unique = true
			case "", "replace":
			default:
				return nil, errors.Annotatef(ErrInvalidInput, "invalid column policy=%v", tmp[2])
			}
		}
		schema = append(schema, col)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}
