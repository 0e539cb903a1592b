package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTabChanged            EventType = "TabChanged"
	EventLayoutChanged         EventType = "LayoutChanged"
	EventThemeChanged          EventType = "ThemeChanged"
	EventAnimationStyleChanged EventType = "AnimationStyleChanged"
	EventOrientationChanged    EventType = "OrientationChanged"
	EventContentReloaded       EventType = "ContentReloaded"
	EventError                 EventType = "Error"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TabChangedEvent is emitted when a tab switcher commits a new active tab
type TabChangedEvent struct {
	InstanceID string
	TabID      string
	Direction  Direction
}

func (e TabChangedEvent) Type() EventType { return EventTabChanged }

// LayoutChangedEvent is emitted when a switcher crosses the compact breakpoint
type LayoutChangedEvent struct {
	InstanceID string
	Compact    bool
	Width      int
	Initial    bool // first measurement of the terminal
}

func (e LayoutChangedEvent) Type() EventType { return EventLayoutChanged }

// ThemeChangedEvent is emitted when the page palette is flipped
type ThemeChangedEvent struct {
	Theme Theme
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// AnimationStyleChangedEvent is emitted when the transition style is changed
type AnimationStyleChangedEvent struct {
	Style AnimationStyle
}

func (e AnimationStyleChangedEvent) Type() EventType { return EventAnimationStyleChanged }

// OrientationChangedEvent is emitted when the tab list axis is changed
type OrientationChangedEvent struct {
	Orientation Orientation
}

func (e OrientationChangedEvent) Type() EventType { return EventOrientationChanged }

// ContentReloadedEvent carries a freshly loaded tab list
type ContentReloadedEvent struct {
	Source string
	Tabs   []TabDescriptor
}

func (e ContentReloadedEvent) Type() EventType { return EventContentReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
