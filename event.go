package murphy

import "fmt"

// Mode says whether a constructor was called by external code or by a child.
type Mode int

const (
	// ModeDirect is a call from user code; only public members are returned.
	ModeDirect Mode = iota
	// ModeDelegated is a call from a child constructor.
	ModeDelegated
)

func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeDelegated:
		return "delegated"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Phase is one step of the construction protocol.
type Phase int

const (
	PhaseDetect Phase = iota
	PhaseDelegate
	PhaseBody
	PhaseProject
)

func (p Phase) String() string {
	switch p {
	case PhaseDetect:
		return "detect"
	case PhaseDelegate:
		return "delegate"
	case PhaseBody:
		return "body"
	case PhaseProject:
		return "project"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Event reports a protocol step to an observer registered with WithObserver.
type Event struct {
	Phase Phase
	Mode  Mode
	// Depth is the position of the constructor in its chain; the root is 1.
	Depth int
	Name  string
}

func (e Event) String() string {
	name := e.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%-8s %-9s depth=%d %s", e.Phase, e.Mode, e.Depth, name)
}
