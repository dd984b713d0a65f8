package tui

import (
	"github.com/MKhiriev/go-task-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login/register flow. On success [RootModel] quits
// the program and hands the session back to the caller.
type LoginResult struct {
	Err     error
	Session models.Session
}

type copiedMsg struct{}

type clearStatusMsg struct{}
