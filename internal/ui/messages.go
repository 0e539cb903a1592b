package ui

import (
	"tabswitch/internal/domain"
	"tabswitch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// contentLoadedMsg carries the result of a manual manifest reload
type contentLoadedMsg struct {
	source string
	tabs   []domain.TabDescriptor
	err    error
}

// helpPagerMsg reports how the ov help pager exited
type helpPagerMsg struct {
	err error
}

// configSavedMsg reports a failed config save
type configSavedMsg struct {
	err error
}
