package enum

import "encoding/json"

// RenderStatus is the outcome of a single chart render
type RenderStatus int

const (
	// RenderStatusSkipped means the mount point was absent on the surface
	RenderStatusSkipped  RenderStatus = 0
	RenderStatusRendered RenderStatus = 1
	RenderStatusFailed   RenderStatus = 2
)

func (s RenderStatus) String() string {
	names := [...]string{"skipped", "rendered", "failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

func (s RenderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
