package ui

const (
	panelPadding   = 12
	headerBaseline = 14
	infoSpacing    = 20
	lineHeight     = 16
)

var keyHelp = []string{
	"space  pause",
	"n      step",
	"r      reset",
	"q/esc  quit",
}

// Status is the playback state shown in the side panel.
type Status struct {
	Steps  int
	Paused bool
	Done   bool
}

// State names the playback state.
func (s Status) State() string {
	switch {
	case s.Done:
		return "done"
	case s.Paused:
		return "paused"
	default:
		return "running"
	}
}
