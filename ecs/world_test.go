package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/wavefall/ecs/component"
)

func intPtr(i int) *int {
	return &i
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
				t.Fatalf("second DestroyEntity should return false")
			}
			if w.Len() != c.create-1 {
				t.Fatalf("expected %d live entities, got %d", c.create-1, w.Len())
			}
		})
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old || fresh.generation() != old.generation()+1 {
		t.Fatalf("expected generation bump: old=%s fresh=%s", old, fresh)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("reused slot must not inherit components")
	}
	if err := Add(w, old, kind, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentCRUD(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e := CreateEntity(w)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_get",
			run: func(t *testing.T) {
				if err := Add(w, e, ints.Kind(), intPtr(10)); err != nil {
					t.Fatal(err)
				}
				v, ok := Get(w, e, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "mutate_through_pointer",
			run: func(t *testing.T) {
				v, _ := Get(w, e, ints.Kind())
				*v = 11
				again, _ := Get(w, e, ints.Kind())
				if *again != 11 {
					t.Fatalf("expected write-through, got %d", *again)
				}
			},
		},
		{
			name: "nil_value_rejected",
			run: func(t *testing.T) {
				if err := Add(w, e, strs.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
		},
		{
			name: "zero_kind_rejected",
			run: func(t *testing.T) {
				var zero component.ComponentKind[int]
				if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
					t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
				}
			},
		},
		{
			name: "remove",
			run: func(t *testing.T) {
				if !Remove(w, e, ints.Kind()) {
					t.Fatalf("expected remove to succeed")
				}
				if Remove(w, e, ints.Kind()) {
					t.Fatalf("second remove should report false")
				}
				if Has(w, e, ints.Kind()) {
					t.Fatalf("component still present after remove")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachSkipsDestroyedDuringIteration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		ents = append(ents, e)
		if err := Add(w, e, kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, kind, func(e Entity, v *int) {
		visited++
		if *v == 0 {
			DestroyEntity(w, ents[3])
		}
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits, got %d", visited)
	}
	if Count(w, kind) != 3 {
		t.Fatalf("expected 3 stored, got %d", Count(w, kind))
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()
	missing := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	for _, add := range []struct {
		e Entity
		k component.ComponentKind[int]
	}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e2, kd}, {e1, kc}} {
		if err := Add(w, add.e, add.k, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}

	var two, three, four, none []Entity
	ForEach2(w, ka, kc, func(e Entity, _, _ *int) { two = append(two, e) })
	ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { three = append(three, e) })
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { four = append(four, e) })
	ForEach2(w, ka, missing, func(e Entity, _, _ *int) { none = append(none, e) })

	if len(two) != 2 {
		t.Fatalf("expected e1 and e2 for ForEach2, got %v", two)
	}
	if len(three) != 1 || three[0] != e2 {
		t.Fatalf("expected only e2 for ForEach3, got %v", three)
	}
	if len(four) != 1 || four[0] != e2 {
		t.Fatalf("expected only e2 for ForEach4, got %v", four)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty when a store is missing, got %v", none)
	}

	if q := w.Query(ka, kb); len(q) != 1 || q[0] != e2 {
		t.Fatalf("expected Query to return e2, got %v", q)
	}
	if q := w.Query(ka, missing); q != nil {
		t.Fatalf("expected nil Query with missing store, got %v", q)
	}
}

func TestFirstFindsSingleton(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponent[struct{}]()

	if _, ok := First(w, tag.Kind()); ok {
		t.Fatalf("expected no entity in empty world")
	}

	CreateEntity(w)
	e := CreateEntity(w)
	if err := Add(w, e, tag.Kind(), &struct{}{}); err != nil {
		t.Fatal(err)
	}
	got, ok := First(w, tag.Kind())
	if !ok || got != e {
		t.Fatalf("expected %s, got %s ok=%v", e, got, ok)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	w.Events().Push(Event{Type: EventType(s.name)})
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var got []string
	s := NewScheduler(recordSystem{"a", &got}, nil, recordSystem{"b", &got})
	s.Add(recordSystem{"c", &got})
	w := NewWorld()

	s.Update(w)

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
	evts := w.Events().Drain()
	if len(evts) != 3 || evts[2].Type != "c" {
		t.Fatalf("unexpected events %v", evts)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after Drain")
	}
}
