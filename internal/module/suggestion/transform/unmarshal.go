package transform

import "encoding/json"

func unmarshal(raw []byte, v interface{}) error {
	return json.Unmarshal(raw, v)
}
