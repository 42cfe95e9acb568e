// Package action implements the named-event dispatch core: Actions describe
// which event names and parameter shapes they accept, Callbacks react to
// them, and a Client holds the ordered registry that ties the two together.
package action

import (
	"fmt"
	"regexp"
)

// Predicate decides whether an (name, param) event is accepted.
type Predicate func(name string, param any) bool

// Action is the pair (triggers, predicate) from the dispatch core: triggers
// is the finite set of event names the action publishes when used as a
// source, predicate decides acceptance when the action is used as a filter.
type Action struct {
	Triggers  []string
	Predicate Predicate
}

// Regex builds an Action whose predicate matches re against name; names are
// the triggers this action publishes.
func Regex(re *regexp.Regexp, names ...string) Action {
	return Action{
		Triggers:  names,
		Predicate: func(name string, _ any) bool { return re.MatchString(name) },
	}
}

// TypeTest returns a predicate accepting any value assignable to T. It
// exists so Typed can perform a runtime type check without making Action
// itself generic (spec.md's Redesign Flags call for exactly this split:
// keep the event bus non-generic, isolate the type discrimination).
func TypeTest[T any]() func(any) bool {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}

// Typed builds an Action whose predicate requires both a regex match on
// name and typeTest(param); typeTest is ordinarily TypeTest[T]() for some T.
func Typed(typeTest func(any) bool, re *regexp.Regexp, names ...string) Action {
	return Action{
		Triggers: names,
		Predicate: func(name string, param any) bool {
			return re.MatchString(name) && typeTest(param)
		},
	}
}

// Any composes actions by logical OR on their predicates; its triggers are
// the union of every component action's triggers.
func Any(actions ...Action) Action {
	var triggers []string
	seen := map[string]bool{}
	for _, a := range actions {
		for _, t := range a.Triggers {
			if !seen[t] {
				seen[t] = true
				triggers = append(triggers, t)
			}
		}
	}
	return Action{
		Triggers: triggers,
		Predicate: func(name string, param any) bool {
			for _, a := range actions {
				if a.Predicate(name, param) {
					return true
				}
			}
			return false
		},
	}
}

// Accepts reports whether a's predicate accepts param under at least one of
// the given trigger names — i.e. whether performing an action that publishes
// triggers with param would invoke a callback registered on a.
func (a Action) Accepts(triggers []string, param any) bool {
	for _, name := range triggers {
		if a.Predicate(name, param) {
			return true
		}
	}
	return false
}

func fullmatch(pattern string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf("^(?:%s)$", pattern))
}
