// Package keymap defines key bindings and action dispatch for the demo page.
package keymap

// Binding maps keys to an action, with text for the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "toasts" or "global"
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"toasts", "global"}

// All contains every key binding of the page.
var All = []Binding{
	{ActionToastError, []string{"e", "1"}, "Error toast", "toasts"},
	{ActionToastWarning, []string{"w", "2"}, "Warning toast", "toasts"},
	{ActionToastInfo, []string{"i", "3"}, "Info toast", "toasts"},
	{ActionToastSuccess, []string{"s", "4"}, "Success toast", "toasts"},
	{ActionCompose, []string{"m"}, "Write a custom toast", "toasts"},

	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// ByContext returns the bindings of one context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
