package system

import (
	"errors"
	"log"

	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// singleton resolves the one entity carrying a marker component. A stage
// that cannot resolve it skips the tick. The condition is logged when it
// starts and when it clears, not every tick.
type singleton struct {
	owner string
	what  string
	kind  component.Kind
	state error
}

func playerSingleton(owner string) singleton {
	return singleton{owner: owner, what: "player", kind: component.PlayerTagComponent.Kind()}
}

func cameraSingleton(owner string) singleton {
	return singleton{owner: owner, what: "camera", kind: component.CameraTagComponent.Kind()}
}

func (s *singleton) resolve(w *ecs.World) (ecs.Entity, bool) {
	e, err := ecs.Single(w, s.kind)
	if err != nil {
		if !sameCondition(err, s.state) {
			log.Printf("%s: skipping tick, %s: %v", s.owner, s.what, err)
		}
		s.state = err
		return 0, false
	}
	if s.state != nil {
		log.Printf("%s: %s resolved again", s.owner, s.what)
		s.state = nil
	}
	return e, true
}

func sameCondition(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	for _, sentinel := range []error{ecs.ErrNoSingleton, ecs.ErrMultipleSingletons} {
		if errors.Is(a, sentinel) {
			return errors.Is(b, sentinel)
		}
	}
	return false
}
