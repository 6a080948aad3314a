package components

import "testing"

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{90, 3, []int{30, 30, 30}},
		{91, 3, []int{31, 30, 30}},
		{92, 3, []int{31, 31, 30}},
		{10, 1, []int{10}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			continue
		}
		sum := 0
		for i := range got {
			sum += got[i]
			if got[i] != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
				break
			}
		}
		if tt.n > 0 && sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('o'); got != 0 {
		t.Errorf("TabIdxByKey('o') = %d, want 0", got)
	}
	if got := TabIdxByKey('t'); got != 3 {
		t.Errorf("TabIdxByKey('t') = %d, want 3", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
