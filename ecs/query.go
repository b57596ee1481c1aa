package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/squashbox/ecs/component"
)

var (
	ErrNoSingleton        = errors.New("ecs: no entity carries singleton component")
	ErrMultipleSingletons = errors.New("ecs: more than one entity carries singleton component")
)

// Query returns the entities carrying every kind, in the insertion order of
// the first kind's store.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]anyStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}

	var out []Entity
	for _, e := range stores[0].entities() {
		match := true
		for _, s := range stores[1:] {
			if !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the earliest inserted entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	ents := s.entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the only entity carrying kind. Anything other than exactly
// one match is an error.
func Single(w *World, kind component.Kind) (Entity, error) {
	if w == nil {
		return 0, ErrNoSingleton
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, ErrNoSingleton
	}
	ents := s.entities()
	switch len(ents) {
	case 0:
		return 0, ErrNoSingleton
	case 1:
		return ents[0], nil
	default:
		return 0, fmt.Errorf("%w: %d found", ErrMultipleSingletons, len(ents))
	}
}

func snapshot(ents []Entity) []Entity {
	return append([]Entity(nil), ents...)
}

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeOf(w, ka, false)
	if sa == nil {
		return
	}
	for _, e := range snapshot(sa.entities()) {
		if a, ok := sa.get(e); ok {
			fn(e, a)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeOf(w, ka, false), storeOf(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range snapshot(sa.entities()) {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeOf(w, kc, false)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.get(e); ok {
			fn(e, a, b, c)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeOf(w, kd, false)
	if sd == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := sd.get(e); ok {
			fn(e, a, b, c, d)
		}
	})
}
