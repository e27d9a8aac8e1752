package groupby

import (
	"testing"

	"pgregory.net/rapid"
)

func TestByKey(t *testing.T) {
	items := []string{"apple", "banana", "avocado", "cherry", "blueberry"}

	groups := ByKey(items, func(s string) byte { return s[0] })

	if groups.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", groups.Len())
	}

	wantA := []string{"apple", "avocado"}
	gotA := groups.Get('a')
	if len(gotA) != len(wantA) {
		t.Fatalf("Get('a') = %v, want %v", gotA, wantA)
	}
	for i := range wantA {
		if gotA[i] != wantA[i] {
			t.Errorf("Get('a')[%d] = %q, want %q", i, gotA[i], wantA[i])
		}
	}

	wantKeys := []byte{'a', 'b', 'c'}
	gotKeys := groups.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("Keys() = %v, want %v", gotKeys, wantKeys)
	}
	for i := range wantKeys {
		if gotKeys[i] != wantKeys[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, gotKeys[i], wantKeys[i])
		}
	}
}

func TestByKey_Empty(t *testing.T) {
	groups := ByKey(nil, func(n int) int { return n })

	if groups.Len() != 0 {
		t.Errorf("Len() = %d, want 0", groups.Len())
	}
	if got := groups.Get(1); got != nil {
		t.Errorf("Get(1) = %v, want nil", got)
	}
	if got := groups.Keys(); len(got) != 0 {
		t.Errorf("Keys() = %v, want empty", got)
	}
}

func TestByKey_MissingKey(t *testing.T) {
	groups := ByKey([]int{1, 2, 3}, func(n int) bool { return n%2 == 0 })

	if got := groups.Get(true); len(got) != 1 || got[0] != 2 {
		t.Errorf("Get(true) = %v, want [2]", got)
	}
	if got := groups.Get(false); len(got) != 2 {
		t.Errorf("Get(false) = %v, want [1 3]", got)
	}
}

// TestByKeyPartitionProperty checks that grouping is a stable partition:
// every element lands in exactly the group of its key, groups preserve
// encounter order, and nothing is lost or invented.
func TestByKeyPartitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(rapid.IntRange(0, 20), 0, 100).Draw(t, "items")
		key := func(n int) int { return n % 5 }

		groups := ByKey(items, key)

		// Every group holds only elements of its key, in encounter order
		total := 0
		for _, k := range groups.Keys() {
			group := groups.Get(k)
			if len(group) == 0 {
				t.Fatalf("key %d present with empty group", k)
			}
			total += len(group)

			want := make([]int, 0, len(group))
			for _, item := range items {
				if key(item) == k {
					want = append(want, item)
				}
			}
			if len(group) != len(want) {
				t.Fatalf("group %d has %d elements, want %d", k, len(group), len(want))
			}
			for i := range want {
				if group[i] != want[i] {
					t.Fatalf("group %d order mismatch at %d: got %d, want %d", k, i, group[i], want[i])
				}
			}
		}

		// Partition: group sizes sum to the input size
		if total != len(items) {
			t.Fatalf("groups hold %d elements, input had %d", total, len(items))
		}

		// Keys appear in first-seen order
		seen := make(map[int]bool)
		var wantKeys []int
		for _, item := range items {
			k := key(item)
			if !seen[k] {
				seen[k] = true
				wantKeys = append(wantKeys, k)
			}
		}
		gotKeys := groups.Keys()
		if len(gotKeys) != len(wantKeys) {
			t.Fatalf("Keys() = %v, want %v", gotKeys, wantKeys)
		}
		for i := range wantKeys {
			if gotKeys[i] != wantKeys[i] {
				t.Fatalf("Keys()[%d] = %d, want %d", i, gotKeys[i], wantKeys[i])
			}
		}
	})
}
