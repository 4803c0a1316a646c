package attrib

import (
	"reflect"
	"testing"
)

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		list []int32
		want int
	}{
		{"nil", nil, 0},
		{"empty", []int32{0}, 0},
		{"one pair", []int32{1, 2, 0}, 1},
		{"three pairs", []int32{1, 2, 3, 4, 5, 6, 0}, 3},
		{"early sentinel hides tail", []int32{1, 2, 0, 0, 7, 8, 0}, 1},
		{"zero value is not a sentinel", []int32{1, 0, 2, 0, 0}, 2},
		{"unterminated", []int32{1, 2, 3, 4}, 2},
		{"dangling key", []int32{1, 2, 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.list); got != tt.want {
				t.Fatalf("Length(%v) = %d, want %d", tt.list, got, tt.want)
			}
		})
	}
}

func TestGetAbsentLeavesValueUntouched(t *testing.T) {
	lists := [][]int32{
		nil,
		{0},
		{1, 2, 0},
		{1, 2, 0, 9, 9, 0},
	}
	for _, list := range lists {
		v := int32(-42)
		if Lookup(list, 9, &v) {
			t.Fatalf("Lookup(%v, 9) found a key past the sentinel or in an empty list", list)
		}
		if v != -42 {
			t.Fatalf("Lookup(%v, 9) modified value to %d", list, v)
		}
		if _, ok := Get(list, 9); ok {
			t.Fatalf("Get(%v, 9) reported ok", list)
		}
	}
}

func TestGetFirstMatchWins(t *testing.T) {
	list := []int{5, 10, 5, 20, 0}
	v, ok := Get(list, 5)
	if !ok || v != 10 {
		t.Fatalf("Get = (%d, %v), want (10, true)", v, ok)
	}
}

func TestGetWithDefault(t *testing.T) {
	list := []int32{1, 11, 2, 22, 0}
	if got := GetWithDefault(list, 2, -1); got != 22 {
		t.Fatalf("present key: got %d, want 22", got)
	}
	if got := GetWithDefault(list, 3, -1); got != -1 {
		t.Fatalf("absent key: got %d, want -1", got)
	}
	if got := GetWithDefault[int32](nil, 3, 7); got != 7 {
		t.Fatalf("nil list: got %d, want 7", got)
	}
}

func TestUpdateNeverChangesLength(t *testing.T) {
	lists := [][]int{
		nil,
		{0},
		{1, 2, 0},
		{1, 2, 3, 4, 0},
		{1, 2, 3, 4, 0, 5, 6, 0},
	}
	for _, list := range lists {
		before := Length(list)
		for _, key := range []int{1, 3, 5, 99} {
			Update(list, key, 1234)
			if got := Length(list); got != before {
				t.Fatalf("Update(%v, %d) changed length %d -> %d", list, key, before, got)
			}
		}
	}
}

func TestUpdate(t *testing.T) {
	list := []int32{1, 2, 3, 4, 0, 5, 6}
	if !Update(list, 3, 40) {
		t.Fatal("Update of existing key returned false")
	}
	if list[3] != 40 {
		t.Fatalf("list[3] = %d, want 40", list[3])
	}
	if Update(list, 5, 60) {
		t.Fatal("Update reached a key past the sentinel")
	}
	if list[6] != 6 {
		t.Fatal("Update modified data past the sentinel")
	}
}

func TestPairsAndDangling(t *testing.T) {
	got := Pairs([]int32{1, 2, 3, 4, 0, 5, 6})
	want := []Pair[int32]{{1, 2}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Pairs = %v, want %v", got, want)
	}

	if !Dangling([]int32{1, 2, 3}) {
		t.Fatal("expected {1,2,3} to be dangling")
	}
	for _, list := range [][]int32{nil, {0}, {1, 2, 0}, {1, 2}, {1, 2, 0, 3}} {
		if Dangling(list) {
			t.Fatalf("Dangling(%v) = true", list)
		}
	}
}

func TestWiden(t *testing.T) {
	if Widen(nil) != nil {
		t.Fatal("Widen(nil) should be nil")
	}
	got := Widen([]int32{1, -1, 2, 0x7fffffff, 0, 9, 9})
	want := []int{1, -1, 2, 0x7fffffff, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Widen = %v, want %v", got, want)
	}
	if Length(got) != 2 {
		t.Fatalf("widened length = %d, want 2", Length(got))
	}
}

func TestBuilder(t *testing.T) {
	var b Builder[int32]
	b.Append(0x3024, 8).Append(0x3023, 8).Set(0x3024, 5).Set(0x3025, 24)

	if b.Len() != 3 {
		t.Fatalf("Len = %d, want 3", b.Len())
	}
	if got, want := b.List(), []int32{0x3024, 5, 0x3023, 8, 0x3025, 24, 0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	const eglNone = 0x3038
	got := b.Terminated(eglNone)
	if got[len(got)-1] != eglNone {
		t.Fatalf("Terminated sentinel = %#x", got[len(got)-1])
	}

	var empty Builder[int]
	if got := empty.List(); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("empty List = %v", got)
	}
}
