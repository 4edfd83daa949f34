package chartjs

import (
	"encoding/json"
	"strconv"
)

// Callback is a value formatter referenced by name in the serialized config
type Callback struct {
	Name   string
	Format func(float64) string
}

// NewCallback creates a named formatter
func NewCallback(name string, format func(float64) string) *Callback {
	return &Callback{Name: name, Format: format}
}

// Apply formats v, falling back to the plain number when no formatter is set
func (c *Callback) Apply(v float64) string {
	if c == nil || c.Format == nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return c.Format(v)
}

func (c *Callback) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name)
}

// UnmarshalJSON restores only the name; Format must be re-bound by the caller.
func (c *Callback) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.Name)
}
