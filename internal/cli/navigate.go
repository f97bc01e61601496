package cli

import tea "github.com/charmbracelet/bubbletea"

// Messages views use to ask the appModel for a transition.

type pushViewMsg struct {
	view View
}

// refreshViewMsg is broadcast to every view on the stack after a mutation.
type refreshViewMsg struct{}

// cmdOutputMsg carries a one-line notice shown above the status bar until
// the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg pops the wizard and then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func outputCmd(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func refreshCmd() tea.Msg {
	return refreshViewMsg{}
}
