package core

// Action represents a semantic intent, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up
	ActionDuck              // S, Down (press or auto-repeat)
	ActionRestart           // R after game over
	ActionPause             // P
	ActionBack              // B, Esc
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
