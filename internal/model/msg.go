package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// FatalMsg carries an error the session cannot continue from.
type FatalMsg struct {
	Err error
}

// ShortlistLoadedMsg is sent when the shortlist is loaded.
type ShortlistLoadedMsg struct {
	Entries []ShortlistEntry
}

// ShortlistSavedMsg is sent when a place was added to the shortlist.
type ShortlistSavedMsg struct {
	ID   int64
	Name string
}

// DeleteShortlistMsg is sent when a shortlist entry was removed.
type DeleteShortlistMsg struct {
	ID      int64
	Deleted ShortlistEntry
}

// Screen represents different app screens.
type Screen int

const (
	ScreenRecommend Screen = iota
	ScreenShortlist
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)

// Pane is the focused half of the recommend screen.
type Pane int

const (
	PaneControls Pane = iota
	PaneResults
)
