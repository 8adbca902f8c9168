package lru

import "testing"

func TestGetSet(t *testing.T) {
	c := New[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to be present")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestSetExistingKeyUpdates(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCapacityClamp(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{name: "negative", capacity: -5, want: 1},
		{name: "zero", capacity: 0, want: 1},
		{name: "positive", capacity: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string, int](tt.capacity)
			if c.Capacity() != tt.want {
				t.Errorf("Capacity() = %d, want %d", c.Capacity(), tt.want)
			}
		})
	}
}

func TestNeverExceedsCapacity(t *testing.T) {
	c := New[int, int](3)
	for i := 0; i < 20; i++ {
		c.Set(i, i)
		if c.Len() > 3 {
			t.Fatalf("Len() = %d after %d inserts, capacity 3", c.Len(), i+1)
		}
	}
	// The three newest keys survive.
	for _, k := range []int{17, 18, 19} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected key %d to be present", k)
		}
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) after Delete reported a hit")
	}
	c.Delete("missing") // no-op

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) after Clear reported a hit")
	}
}
