package core

// Action represents a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - move option cursor left
	ActionRight          // Right arrow, l - move option cursor right
	ActionConfirm        // Enter, Space - pick the option under the cursor
	ActionPick1          // 1 - pick first option
	ActionPick2          // 2 - pick second option
	ActionPick3          // 3 - pick third option
	ActionPick4          // 4 - pick fourth option
	ActionRestart        // R - new session after game over
	ActionHelp           // ? - toggle full help
	ActionScreenshot     // Ctrl+S - dump the screen to a text file
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPick1, ActionPick2, ActionPick3, ActionPick4:
		return "Pick"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PickIndex returns the 0-based option index for a direct pick action.
func (a Action) PickIndex() (int, bool) {
	if a < ActionPick1 || a > ActionPick4 {
		return 0, false
	}
	return int(a - ActionPick1), true
}
