package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// StringList encodes a string slice for a JSON column, never null.
func StringList(vals []string) datatypes.JSON {
	if vals == nil {
		vals = []string{}
	}
	b, _ := json.Marshal(vals)
	return datatypes.JSON(b)
}

// DecodeStringList is the inverse of StringList; bad or empty column data
// decodes to an empty slice.
func DecodeStringList(col datatypes.JSON) []string {
	var vals []string
	if col != nil {
		if err := json.Unmarshal(col, &vals); err != nil {
			return []string{}
		}
	}
	if vals == nil {
		vals = []string{}
	}
	return vals
}
