package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType represents column data type
type DataType struct {
	Class DataClass
	Size  []uint32
}

// NewDataType creates data type, it returns an error when size count does not match data class arity
func NewDataType(class DataClass, size ...uint32) (*DataType, error) {
	if !class.Arity().Accepts(len(size)) {
		return nil, fmt.Errorf("invalid number of size arguments for %v: %v", class, len(size))
	}
	ret := &DataType{Class: class}
	if len(size) > 0 {
		ret.Size = size
	}
	return ret, nil
}

// Precision returns first size argument
func (t *DataType) Precision() (uint32, bool) {
	if len(t.Size) > 0 {
		return t.Size[0], true
	}
	return 0, false
}

// Scale returns second size argument
func (t *DataType) Scale() (uint32, bool) {
	if len(t.Size) > 1 {
		return t.Size[1], true
	}
	return 0, false
}

func (t *DataType) String() string {
	if len(t.Size) == 0 {
		return t.Class.String()
	}
	sizes := make([]string, len(t.Size))
	for i, size := range t.Size {
		sizes[i] = strconv.Itoa(int(size))
	}
	return t.Class.String() + "(" + strings.Join(sizes, ",") + ")"
}
