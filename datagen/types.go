package datagen

import (
	"strings"

	"github.com/pingcap/errors"
)

// ColumnType is the declared type of a synthesized column.
type ColumnType int

const (
	TypeInteger ColumnType = iota
	TypeFloat
	TypeString
	TypeCategory
)

const (
	// IntegerDomain is the number of distinct values an integer column can take: [0, IntegerDomain).
	IntegerDomain = 100
	// FloatUpperBound is the exclusive upper bound of float columns.
	FloatUpperBound = 100.0
)

// Categories is the fixed alphabet category columns draw from.
var Categories = []string{"A", "B", "C", "D"}

var (
	typeNameMap = map[ColumnType]string{
		TypeInteger:  "integer",
		TypeFloat:    "float",
		TypeString:   "string",
		TypeCategory: "category",
	}
	typeAliasMap = map[string]ColumnType{ // read-only
		"integer":  TypeInteger,
		"int":      TypeInteger,
		"float":    TypeFloat,
		"double":   TypeFloat,
		"string":   TypeString,
		"text":     TypeString,
		"category": TypeCategory,
	}
)

func (tp ColumnType) String() string {
	if name, ok := typeNameMap[tp]; ok {
		return name
	}
	return "unknown"
}

// ParseColumnType converts a type tag like "Integer" or "double" to a ColumnType.
func ParseColumnType(tag string) (ColumnType, error) {
	tp, ok := typeAliasMap[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return 0, errors.Annotatef(ErrInvalidInput, "unknown column type=%v", tag)
	}
	return tp, nil
}

func (tp *ColumnType) UnmarshalText(text []byte) error {
	v, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}
	*tp = v
	return nil
}

func (tp ColumnType) MarshalText() ([]byte, error) {
	if _, ok := typeNameMap[tp]; !ok {
		return nil, errors.Annotatef(ErrInvalidInput, "unknown column type=%d", int(tp))
	}
	return []byte(tp.String()), nil
}
