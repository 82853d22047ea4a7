package state

// Controls says which groups of commands are currently enabled.
type Controls struct {
	TimelineSelect bool
	AddTimeline    bool
	Logout         bool
	// Interactive covers every other control: the event form, per-event
	// edit/delete and user management.
	Interactive bool
}

// Derive computes Controls from s. It has no side effects.
func Derive(s *State) Controls {
	if s.Busy {
		return Controls{}
	}
	return Controls{
		TimelineSelect: true,
		AddTimeline:    s.IsAdmin(),
		Logout:         true,
		Interactive:    !(s.IsAdmin() && s.CurrentTimeline == ""),
	}
}
