package engine

import "testing"

func TestColorVecMapInsertGetErase(t *testing.T) {
	m := newColorVecMap[NodeId]()

	if m.count(5) != 0 {
		t.Fatalf("fresh map should report color 5 absent")
	}

	m.insertOne(5, NodeId(1))
	m.insertOne(5, NodeId(2))
	if m.count(5) != 1 {
		t.Fatalf("color 5 should be live after insert")
	}
	got := m.get(5)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("get(5) = %v, want [1 2]", got)
	}

	m.erase(5)
	if m.count(5) != 0 {
		t.Fatalf("color 5 should be absent after erase")
	}

	m.insertOne(5, NodeId(9))
	if got := m.get(5); len(got) != 1 || got[0] != 9 {
		t.Fatalf("insertOne after erase should start a fresh sequence, got %v", got)
	}
}

func TestColorVecMapKeysCompaction(t *testing.T) {
	m := newColorVecMap[int]()
	m.insertOne(1, 100)
	m.insertOne(2, 200)
	m.insertOne(3, 300)
	m.erase(2)

	keys := m.keys()
	if len(keys) != 2 {
		t.Fatalf("keys() = %v, want 2 live keys", keys)
	}
	for _, k := range keys {
		if k == 2 {
			t.Fatalf("keys() returned erased color 2")
		}
	}
}

func TestColorVecMapRemoveFirstValue(t *testing.T) {
	m := newColorVecMap[int]()
	m.insertOne(7, 1)
	m.insertOne(7, 1)
	m.insertOne(7, 2)

	m.removeFirstValue(7, 1)
	got := m.get(7)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("removeFirstValue should drop only one occurrence, got %v", got)
	}
}

func TestColorVecMapClone(t *testing.T) {
	m := newColorVecMap[int]()
	m.insertOne(4, 40)

	clone := m.clone()
	clone.insertOne(4, 41)

	if got := m.get(4); len(got) != 1 {
		t.Fatalf("mutating the clone should not affect the original, got %v", got)
	}
}

func TestVertexMapAssignGet(t *testing.T) {
	m := newVertexMap()
	v := Vertex{Color: 3, True: true}
	rv := Vertex{Color: 3, True: false}

	if m.count(v) != 0 || m.count(rv) != 0 {
		t.Fatalf("fresh vertexMap should report everything absent")
	}

	m.assign(v, 7)
	if got := m.get(v); got != 7 {
		t.Errorf("get(v) = %d, want 7", got)
	}
	if m.count(rv) != 0 {
		t.Errorf("assigning true-polarity vertex should not affect the false-polarity one")
	}
}
