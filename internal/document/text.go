package document

import (
	"bytes"
	"encoding/json"
)

// Text is a string field in a persisted document.
//
// Decoding is lenient in the same way as Amount. A JSON string is kept as is
// and a JSON number keeps its literal digits, since older stores wrote ids
// (Date.now()) and check numbers as numbers. Anything else decodes as empty.
// Encoding writes a plain JSON string.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch {
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*t = Text(s)
		}
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err == nil {
			*t = Text(n.String())
		}
	}
	return nil
}

func textPtr(s string) *Text {
	t := Text(s)
	return &t
}
