// file: internals/helpers/ref_field.go
package helper

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

/*
RefField is a foreign key in a request body:
- absent      : Present() == false
- null or ""  : Present(), ID() == nil
- 12 or "12"  : Present(), ID() == 12
anything else is kept as Invalid() so the handler can name the field.
*/
type RefField struct {
	set     bool
	invalid bool
	id      *uint
}

func (f *RefField) UnmarshalJSON(b []byte) error {
	f.set = true
	f.id, f.invalid = nil, false

	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		f.invalid = true
		return nil
	}
	var s string
	switch v := raw.(type) {
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		s = strings.TrimSpace(v)
		if s == "" {
			return nil
		}
	default:
		f.invalid = true
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		f.invalid = true
		return nil
	}
	id := uint(n)
	f.id = &id
	return nil
}

func (f RefField) Present() bool { return f.set }
func (f RefField) Invalid() bool { return f.set && f.invalid }
func (f RefField) ID() *uint     { return f.id }
