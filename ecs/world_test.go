package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/squashbox/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("destroying twice should fail")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestEntitySlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	kind := component.NewComponentKind[int]()
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused entity must differ by generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, reused, kind) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, h2.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "get_returns_live_pointer",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				*v = 99
				again, _ := Get(w, e2, h1.Kind())
				if *again != 99 {
					t.Fatalf("mutation through Get pointer was lost")
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryKeepsInsertionOrder(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponentKind[struct{}]()
	val := component.NewComponentKind[int]()

	var want []Entity
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, tag, &struct{}{}); err != nil {
			t.Fatal(err)
		}
		if i%2 == 0 {
			if err := Add(w, e, val, intPtr(i)); err != nil {
				t.Fatal(err)
			}
			want = append(want, e)
		}
	}

	got := w.Query(tag, val)
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: %v vs %v", i, got, want)
		}
	}

	// removing from the middle must not reorder the rest
	Remove(w, want[1], tag)
	got = w.Query(tag, val)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[2] {
		t.Fatalf("unexpected order after removal: %v", got)
	}
}

func TestSingle(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{"none", 0, ErrNoSingleton},
		{"one", 1, nil},
		{"two", 2, ErrMultipleSingletons},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			kind := component.NewComponentKind[struct{}]()
			var last Entity
			for i := 0; i < tt.count; i++ {
				last = CreateEntity(w)
				if err := Add(w, last, kind, &struct{}{}); err != nil {
					t.Fatal(err)
				}
			}
			e, err := Single(w, kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && e != last {
				t.Fatalf("expected %v, got %v", last, e)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, k, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, k, intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, k, func(e Entity, v *int) {
		*v *= 10
		ents = append(ents, e)
	})
	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3], got %v (e2=%v)", ents, e2)
	}
	if v, _ := Get(w, e3, k); *v != 30 {
		t.Fatalf("expected ForEach mutation to stick, got %d", *v)
	}
}

func TestForEachN(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				kd := component.NewComponentKind[int]()

				for _, add := range []struct {
					e Entity
					k component.ComponentKind[int]
				}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e2, kd}, {e3, kb}, {e3, kc}} {
					if err := Add(w, add.e, add.k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res3, res4 []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res3 = append(res3, e) })
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res4 = append(res4, e) })
				if len(res3) != 1 || res3[0].id() != e2.id() {
					t.Fatalf("ForEach3: expected only e2, got %v", res3)
				}
				if len(res4) != 1 || res4[0].id() != e2.id() {
					t.Fatalf("ForEach4: expected only e2, got %v", res4)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}
				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				called := false
				ForEach3(w, ka, kb, kc, func(Entity, *int, *int, *int) { called = true })
				if called {
					t.Fatalf("expected no callback when a store is missing")
				}
				if res := w.Query(ka, kb); res != nil {
					t.Fatalf("expected nil query result, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestWorldUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(SystemFunc(func(*World) { order = append(order, "a") }))
	w.AddSystem(nil)
	w.AddSystem(SystemFunc(func(w *World) {
		order = append(order, "b")
		w.Events().Push(Event{Type: "x"})
	}))

	w.Update()
	w.Update()

	if len(order) != 4 || order[0] != "a" || order[1] != "b" || order[2] != "a" || order[3] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if w.Tick() != 2 {
		t.Fatalf("expected tick 2, got %d", w.Tick())
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events must be flushed at the end of a tick")
	}
}

func TestDrainCollisions(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: CollisionEventType, Data: CollisionEvent{Entity: 1, Kind: CollisionEventLanded}})
	q.Push(Event{Type: "other"})
	q.Push(Event{Type: CollisionEventType, Data: CollisionEvent{Entity: 2, Kind: CollisionEventLanded}})

	got := q.DrainCollisions(CollisionEventLanded)
	if len(got) != 2 || got[0].Entity != 1 || got[1].Entity != 2 {
		t.Fatalf("unexpected drained events %v", got)
	}
	if q.Len() != 1 {
		t.Fatalf("expected the unrelated event to stay queued, have %d", q.Len())
	}
	if rest := q.Drain(); len(rest) != 1 || rest[0].Type != "other" {
		t.Fatalf("unexpected remaining events %v", rest)
	}
}
