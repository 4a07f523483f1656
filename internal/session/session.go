// Package session models browse-and-drill-down navigation as an
// immutable state value transformed by discrete intents. Shells keep
// one State per user session and re-query the catalog, resolver and
// recipe builder from whatever the current screen says; the state
// itself holds entity names, never entity data.
package session

// Tab selects which listing the root screen shows.
type Tab string

const (
	TabGods  Tab = "gods"
	TabItems Tab = "items"
)

// ScreenKind discriminates the Screen variants.
type ScreenKind string

const (
	ScreenList          ScreenKind = "list"
	ScreenGodDetail     ScreenKind = "god"
	ScreenItemDetail    ScreenKind = "item"
	ScreenAbilityDetail ScreenKind = "ability"
)

// Screen is one entry in the navigation stack.
type Screen struct {
	Kind       ScreenKind `json:"kind"`
	GodName    string     `json:"god_name,omitempty"`
	ItemName   string     `json:"item_name,omitempty"`
	AbilityKey string     `json:"ability_key,omitempty"`
}

// State is the full navigation state. The zero value is the god
// listing with no filters. State values are immutable; Apply returns
// a new value and never mutates the receiver's stack.
type State struct {
	Tab      Tab      `json:"tab"`
	Pantheon string   `json:"pantheon,omitempty"`
	Category string   `json:"category,omitempty"`
	Stat     string   `json:"stat,omitempty"`
	Query    string   `json:"query,omitempty"`
	Stack    []Screen `json:"stack,omitempty"`
}

// Current returns the screen on top of the stack, or the listing
// screen when the stack is empty.
func (s State) Current() Screen {
	if len(s.Stack) == 0 {
		return Screen{Kind: ScreenList}
	}
	return s.Stack[len(s.Stack)-1]
}

// Intent is a discrete user action. Intents are idempotently
// re-dispatchable: applying the same intent twice yields the same
// state as applying it once.
type Intent interface{ isIntent() }

type SelectGod struct{ Name string }
type SelectItem struct{ Name string }
type SelectAbility struct {
	GodName string
	Key     string
}

// RerootRecipe drills into a recipe tree node, pushing a fresh item
// detail so back-navigation retraces the drill-down.
type RerootRecipe struct{ ItemName string }

type SetTab struct{ Tab Tab }
type SetQuery struct{ Query string }
type SetPantheon struct{ Pantheon string }
type SetCategory struct{ Category string }
type SetStat struct{ Stat string }
type Back struct{}

func (SelectGod) isIntent()     {}
func (SelectItem) isIntent()    {}
func (SelectAbility) isIntent() {}
func (RerootRecipe) isIntent()  {}
func (SetTab) isIntent()        {}
func (SetQuery) isIntent()      {}
func (SetPantheon) isIntent()   {}
func (SetCategory) isIntent()   {}
func (SetStat) isIntent()       {}
func (Back) isIntent()          {}

// Apply reduces an intent into a new state.
func Apply(s State, intent Intent) State {
	switch in := intent.(type) {
	case SelectGod:
		return s.push(Screen{Kind: ScreenGodDetail, GodName: in.Name})
	case SelectItem:
		return s.push(Screen{Kind: ScreenItemDetail, ItemName: in.Name})
	case SelectAbility:
		return s.push(Screen{Kind: ScreenAbilityDetail, GodName: in.GodName, AbilityKey: in.Key})
	case RerootRecipe:
		return s.push(Screen{Kind: ScreenItemDetail, ItemName: in.ItemName})
	case SetTab:
		// Switching tabs abandons any drill-down.
		s.Tab = in.Tab
		s.Stack = nil
		return s
	case SetQuery:
		s.Query = in.Query
		return s
	case SetPantheon:
		s.Pantheon = in.Pantheon
		return s
	case SetCategory:
		s.Category = in.Category
		return s
	case SetStat:
		s.Stat = in.Stat
		return s
	case Back:
		if len(s.Stack) == 0 {
			return s
		}
		s.Stack = append([]Screen(nil), s.Stack[:len(s.Stack)-1]...)
		return s
	default:
		return s
	}
}

// push adds a screen unless it is already current, which keeps
// re-dispatched selections from stacking duplicates.
func (s State) push(screen Screen) State {
	if s.Current() == screen {
		return s
	}
	stack := make([]Screen, len(s.Stack), len(s.Stack)+1)
	copy(stack, s.Stack)
	s.Stack = append(stack, screen)
	return s
}
