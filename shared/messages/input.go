package messages

// InputState is the full intent record sampled from raw input. The
// sequence number increases monotonically; the server echoes the last
// one it processed in each player row.
type InputState struct {
	Forward   bool
	Backward  bool
	Left      bool
	Right     bool
	Sprint    bool
	Jump      bool
	Attack    bool
	CastSpell bool
	Sequence  uint32
}

// Equal reports whether two intent records match, sequence included.
func (s InputState) Equal(o InputState) bool {
	return s == o
}
