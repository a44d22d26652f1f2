package confmap

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"
)

// prettyOptions renders documents with two-space indentation and leaves key
// order untouched. Short arrays of scalars stay on one line.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Pretty serializes v as indented JSON terminated by a newline.
// HTML characters are not escaped.
func Pretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}
