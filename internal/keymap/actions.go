package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Toast triggers, one per kind
	ActionToastError   Action = "toast_error"
	ActionToastWarning Action = "toast_warning"
	ActionToastInfo    Action = "toast_info"
	ActionToastSuccess Action = "toast_success"

	// Opens the prompt for a custom message
	ActionCompose Action = "compose"
)
