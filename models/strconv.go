package models

import "strconv"

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
