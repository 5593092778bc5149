package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical scene action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionOpen
	ActionClose
	ActionAutoPlay
	ActionSelectNext
	ActionRecord
	ActionLoad
	ActionToggleAuthoring
	ActionToggleGizmos
	ActionToggleInspector
	ActionToggleMute
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Mouse button used to grab handles and gizmo points
	DragButton ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		DragButton:     ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionOpen: {
				Keys: []ebiten.Key{ebiten.KeyD},
				// D-pad Down pulls the slider down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionClose: {
				Keys: []ebiten.Key{ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionAutoPlay: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionSelectNext: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionRecord: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionLoad: {
				Keys: []ebiten.Key{ebiten.KeyL},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionToggleAuthoring: {
				Keys: []ebiten.Key{ebiten.KeyT},
			},
			ActionToggleGizmos: {
				Keys: []ebiten.Key{ebiten.KeyG, ebiten.KeyF1},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleInspector: {
				Keys: []ebiten.Key{ebiten.KeyI},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionPanLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
			},
			ActionPanRight: {
				Keys: []ebiten.Key{ebiten.KeyRight},
			},
			ActionPanUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionPanDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
