package tabswitcher

import "tabswitch/internal/domain"

// Role of an accessibility node
type Role string

const (
	RoleTabList  Role = "tablist"
	RoleTab      Role = "tab"
	RoleTabPanel Role = "tabpanel"
)

// Node describes one element of the switcher to assistive tooling and tests.
// TabIndex follows the roving convention: 0 is reachable by Tab, -1 is not.
type Node struct {
	Role        Role
	ID          string
	Label       string
	Selected    bool
	Focused     bool
	Hidden      bool
	TabIndex    int
	Controls    string // tab -> panel
	LabelledBy  string // panel -> tab
	Orientation domain.Orientation
	Children    []Node
}

func tabNodeID(id string) string   { return "tab-" + id }
func panelNodeID(id string) string { return "panel-" + id }

// Accessibility returns the role tree of the switcher: one tablist holding a
// tab per descriptor, followed by a panel per descriptor. Exactly one tab is
// selected and only its panel is visible. An inert switcher has no nodes.
func (m *Model) Accessibility() []Node {
	if m.inert() {
		return nil
	}

	orientation := m.orientation
	if m.compact {
		orientation = domain.Horizontal
	}
	list := Node{
		Role:        RoleTabList,
		ID:          "tablist-" + m.id,
		Orientation: orientation,
		TabIndex:    -1,
		Children:    make([]Node, 0, len(m.tabs)),
	}

	panels := make([]Node, 0, len(m.tabs))
	for _, t := range m.tabs {
		active := t.ID == m.activeID
		tab := Node{
			Role:     RoleTab,
			ID:       tabNodeID(t.ID),
			Label:    t.Label,
			Selected: active,
			Focused:  m.region == RegionTabs && t.ID == m.focusedID,
			TabIndex: -1,
			Controls: panelNodeID(t.ID),
		}
		if active {
			tab.TabIndex = 0
		}
		list.Children = append(list.Children, tab)

		panel := Node{
			Role:       RoleTabPanel,
			ID:         panelNodeID(t.ID),
			Label:      t.Label,
			Hidden:     !active,
			Focused:    active && m.region == RegionPanel,
			TabIndex:   -1,
			LabelledBy: tabNodeID(t.ID),
		}
		if active {
			panel.TabIndex = 0
		}
		panels = append(panels, panel)
	}

	return append([]Node{list}, panels...)
}

// TabOrder returns the node ids reachable with the Tab key, in order
func (m *Model) TabOrder() []string {
	if m.inert() {
		return nil
	}
	return []string{tabNodeID(m.activeID), panelNodeID(m.activeID)}
}
