package ecs

import "github.com/milk9111/squashbox/ecs/component"

// World owns entities, their component stores, the per-tick system order
// and the event queue.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]anyStore
	scheduler *Scheduler
	events    EventQueue
	tick      uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]anyStore),
		scheduler: NewScheduler(),
	}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	return w.entities.all()
}

func (w *World) CreateEntity() Entity {
	return CreateEntity(w)
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns a copy of the update order.
func (w *World) Systems() []System {
	return w.scheduler.Systems()
}

// Update runs every system once, in order, then drops undrained events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.tick++
	w.scheduler.Update(w)
	w.events.flush()
}

// Tick is the number of completed or in-progress updates.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
