package request

import "encoding/json"

// FlexString is a string that also accepts a JSON number. The listing
// endpoints serialize some legacy columns as numbers (RequestId) and some
// as strings (Salary), so clients round-trip either form; binding must take
// both. Form values bind as plain strings.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n)
	return nil
}

func (s FlexString) String() string { return string(s) }
