package components

import (
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// MouseData is the cursor state for the drag button.
type MouseData struct {
	Screen   math.Vec2
	World    math.Vec2
	Current  bool
	Previous bool
	// OverUI is set while the cursor is over the inspector panel.
	OverUI bool
}

func (m *MouseData) Button() ActionState {
	return ActionState{
		Pressed:      m.Current,
		JustPressed:  m.Current && !m.Previous,
		JustReleased: !m.Current && m.Previous,
	}
}

var Mouse = donburi.NewComponentType[MouseData]()
