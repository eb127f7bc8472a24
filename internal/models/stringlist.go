package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. The admin UI sends tags both ways, so the
// payload is normalized here, before it reaches any collection: every
// entry is trimmed and empty entries are dropped.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = SplitAndTrim(arr...)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("must be a string or an array of strings")
	}
	*s = SplitAndTrim(strings.Split(raw, ",")...)
	return nil
}

// SplitAndTrim trims each value and drops the empty ones.
func SplitAndTrim(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
