package cli

import "github.com/sansu-app/sansu/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Started is set once the host has recorded a game start. The home
	// command prints it after the TUI exits.
	Started *domain.PlaySession

	// starting is true from the first activation until its gameStartedMsg
	// arrives. Keys are dropped meanwhile so only one session is recorded.
	starting bool
}
