package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/milk9111/squashbox/geom"
)

// CollisionSystem resolves the player against every static collider.
//
// Colliders are visited in creation order and each contact is applied before
// the next collider is tested, so with several overlaps the resting position
// depends on that order. Grounded is rebuilt from scratch every tick; a
// false to true flip queues a landed event for LandingSquashSystem.
type CollisionSystem struct {
	player   singleton
	contacts []geom.Contact
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{player: playerSingleton("collision")}
}

// Contacts returns the contacts resolved during the last tick.
func (s *CollisionSystem) Contacts() []geom.Contact {
	return append([]geom.Contact(nil), s.contacts...)
}

func (s *CollisionSystem) Update(w *ecs.World) {
	s.contacts = s.contacts[:0]

	player, ok := s.player.resolve(w)
	if !ok {
		return
	}
	pos, ok := ecs.Get(w, player, component.PositionComponent.Kind())
	if !ok {
		return
	}
	size, ok := hitbox(w, player)
	if !ok {
		return
	}
	var vel cp.Vector
	velComp, hasVel := ecs.Get(w, player, component.VelocityComponent.Kind())
	if hasVel {
		vel = velComp.Vec
	}

	grounded, ok := ecs.Get(w, player, component.GroundedComponent.Kind())
	if !ok {
		grounded = &component.Grounded{}
		_ = ecs.Add(w, player, component.GroundedComponent.Kind(), grounded)
	}
	grounded.Prev = grounded.Value
	grounded.Value = false

	for _, c := range w.Query(component.ColliderTagComponent.Kind(), component.PositionComponent.Kind(), component.ShapeComponent.Kind()) {
		if c == player {
			continue
		}
		cpos, _ := ecs.Get(w, c, component.PositionComponent.Kind())
		cshape, _ := ecs.Get(w, c, component.ShapeComponent.Kind())

		contact, hit := geom.Collide(geom.NewAABB(pos.Vec, size), geom.NewAABB(cpos.Vec, cshape.Size))
		if !hit {
			continue
		}
		contact.Apply(&pos.Vec, &vel)
		s.contacts = append(s.contacts, contact)
		if contact.Side == geom.Bottom {
			grounded.Value = true
		}
	}

	if hasVel {
		velComp.Vec = vel
	}
	if grounded.Landed() {
		w.Events().Push(ecs.Event{
			Type: ecs.CollisionEventType,
			Data: ecs.CollisionEvent{Entity: player, Kind: ecs.CollisionEventLanded},
		})
	}
}

// hitbox is the visual footprint when present, otherwise the logical shape.
func hitbox(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if vs, ok := ecs.Get(w, e, component.VisualShapeComponent.Kind()); ok {
		return vs.Size, true
	}
	if s, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
		return s.Size, true
	}
	return cp.Vector{}, false
}
