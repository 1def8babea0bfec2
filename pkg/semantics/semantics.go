// Package semantics describes render objects to assistive technology.
package semantics

import "fmt"

// SemanticsRole identifies what kind of control a node is.
type SemanticsRole int

const (
	SemanticsRoleNone SemanticsRole = iota
	SemanticsRoleProgressIndicator
	SemanticsRoleSlider
)

func (r SemanticsRole) String() string {
	switch r {
	case SemanticsRoleNone:
		return "none"
	case SemanticsRoleProgressIndicator:
		return "progress_indicator"
	case SemanticsRoleSlider:
		return "slider"
	default:
		return fmt.Sprintf("SemanticsRole(%d)", int(r))
	}
}

// SemanticsAction is an action assistive technology can request.
type SemanticsAction int

const (
	SemanticsActionIncrease SemanticsAction = iota + 1
	SemanticsActionDecrease
)

func (a SemanticsAction) String() string {
	switch a {
	case SemanticsActionIncrease:
		return "increase"
	case SemanticsActionDecrease:
		return "decrease"
	default:
		return fmt.Sprintf("SemanticsAction(%d)", int(a))
	}
}

// SemanticsProperties holds the announced description of a node.
type SemanticsProperties struct {
	Role  SemanticsRole
	Label string
	Value string
	// Hint describes the result of performing an action.
	Hint string
}

// IsEmpty reports whether no property is set.
func (p SemanticsProperties) IsEmpty() bool {
	return p == SemanticsProperties{}
}

// SemanticsActions maps actions to handlers.
type SemanticsActions struct {
	handlers map[SemanticsAction]func(args any)
}

// NewSemanticsActions returns an empty action set.
func NewSemanticsActions() *SemanticsActions {
	return &SemanticsActions{handlers: make(map[SemanticsAction]func(args any))}
}

// SetHandler registers fn for action, replacing any previous handler.
func (a *SemanticsActions) SetHandler(action SemanticsAction, fn func(args any)) {
	a.handlers[action] = fn
}

// Has reports whether action has a handler.
func (a *SemanticsActions) Has(action SemanticsAction) bool {
	if a == nil {
		return false
	}
	_, ok := a.handlers[action]
	return ok
}

// Perform runs the handler for action and reports whether one existed.
func (a *SemanticsActions) Perform(action SemanticsAction, args any) bool {
	if !a.Has(action) {
		return false
	}
	a.handlers[action](args)
	return true
}

// IsEmpty reports whether no handler is registered.
func (a *SemanticsActions) IsEmpty() bool {
	return a == nil || len(a.handlers) == 0
}

// SemanticsConfiguration describes semantic properties and actions for a
// render object.
type SemanticsConfiguration struct {
	// IsSemanticBoundary makes the object its own node instead of merging
	// into an ancestor.
	IsSemanticBoundary bool
	Properties         SemanticsProperties
	Actions            *SemanticsActions
}

// IsEmpty reports whether the configuration carries any information.
func (c SemanticsConfiguration) IsEmpty() bool {
	return !c.IsSemanticBoundary && c.Properties.IsEmpty() && c.Actions.IsEmpty()
}

// SemanticsDescriber is implemented by render objects that expose semantics.
type SemanticsDescriber interface {
	// DescribeSemanticsConfiguration fills config and reports whether the
	// object contributes semantics.
	DescribeSemanticsConfiguration(config *SemanticsConfiguration) bool
}

// Describe returns the configuration of object, or false when it has none.
func Describe(object any) (SemanticsConfiguration, bool) {
	var config SemanticsConfiguration
	d, ok := object.(SemanticsDescriber)
	if !ok || !d.DescribeSemanticsConfiguration(&config) {
		return SemanticsConfiguration{}, false
	}
	return config, true
}
