package campaign

import "github.com/bytedance/sonic"

// Encode marshals the campaign into its persisted document form:
// {"nodes":[...],"edges":[...]}.
func (c Campaign) Encode() ([]byte, error) {
	return sonic.Marshal(c)
}

// Decode parses a persisted campaign document.
func Decode(doc []byte) (Campaign, error) {
	var c Campaign
	if err := sonic.Unmarshal(doc, &c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}
