package status

// Snapshot represents exactly what the mirror is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health        uint16
	LastErrorCode uint16
	Version       uint32
	Params        []uint32 // packed PARAM values last downloaded
}

// Clone returns a copy that does not share the Params slice.
func (s Snapshot) Clone() Snapshot {
	c := s
	if s.Params != nil {
		c.Params = append([]uint32(nil), s.Params...)
	}
	return c
}
