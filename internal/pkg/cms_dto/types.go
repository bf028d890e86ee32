package cms_dto

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type Reference struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

type Image struct {
	Type  string    `json:"_type,omitempty"`
	Asset Reference `json:"asset"`
}

// FlexString accepts either a JSON string or a JSON number.
// Some documents store experience and joinedAt as "13 سنة", others as 13.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Int returns the leading integer of the value, or 0 when there is none.
func (f FlexString) Int() int {
	fields := strings.Fields(string(f))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
