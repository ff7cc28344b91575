package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// unmarshalEnum decodes an enum value written either as its numeric code or
// as its symbolic name, the two forms the protobuf JSON mapping allows.
func unmarshalEnum(b []byte, byName map[string]int32) (int32, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, nil
	}

	if b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return 0, err
		}
		if v, ok := byName[name]; ok {
			return v, nil
		}
		// numeric codes are sometimes quoted by loosely typed producers
		if v, err := strconv.ParseInt(name, 10, 32); err == nil {
			return int32(v), nil
		}
		return 0, fmt.Errorf("unknown enum value %q", name)
	}

	var v int32
	if err := json.Unmarshal(b, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func marshalEnum(v int32, byValue map[int32]string) ([]byte, error) {
	if name, ok := byValue[v]; ok {
		return json.Marshal(name)
	}
	return json.Marshal(v)
}
