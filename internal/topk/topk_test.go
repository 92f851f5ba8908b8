package topk

import "testing"

func TestInsertKeepsBestN(t *testing.T) {
	tk := New(3, 1e-9)
	results := []Result{
		{Start: 0, SegmentLength: 2, Cost: 5},
		{Start: 1, SegmentLength: 2, Cost: 1},
		{Start: 2, SegmentLength: 2, Cost: 3},
		{Start: 3, SegmentLength: 2, Cost: 0.5},
		{Start: 4, SegmentLength: 2, Cost: 9},
	}
	for _, r := range results {
		tk.Insert(r)
	}
	if tk.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tk.Len())
	}
	snap := tk.Snapshot()
	wantCosts := []float64{0.5, 1, 3}
	for i, want := range wantCosts {
		if snap[i].Cost != want {
			t.Fatalf("snapshot[%d].Cost = %v, want %v", i, snap[i].Cost, want)
		}
	}
}

func TestInsertTieBreaksByLongerSegmentThenLowerStart(t *testing.T) {
	tk := New(2, 1e-9)
	tk.Insert(Result{Start: 5, SegmentLength: 2, Cost: 1})
	tk.Insert(Result{Start: 0, SegmentLength: 4, Cost: 1})
	tk.Insert(Result{Start: 1, SegmentLength: 4, Cost: 1})
	snap := tk.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Len() = %d, want 2", len(snap))
	}
	// all costs equal: longer segment_length wins, so the two length-4
	// entries survive and the length-2 entry is evicted; among them lower
	// start wins first place.
	if snap[0].Start != 0 || snap[0].SegmentLength != 4 {
		t.Fatalf("snapshot[0] = %+v, want start=0 length=4", snap[0])
	}
	if snap[1].Start != 1 || snap[1].SegmentLength != 4 {
		t.Fatalf("snapshot[1] = %+v, want start=1 length=4", snap[1])
	}
}

func TestZeroCapacityIsNoOp(t *testing.T) {
	tk := New(0, 1e-9)
	tk.Insert(Result{Start: 0, SegmentLength: 1, Cost: 0})
	if tk.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tk.Len())
	}
}

func TestCostsWithinEpsilonTreatedAsEqual(t *testing.T) {
	tk := New(1, 0.01)
	tk.Insert(Result{Start: 0, SegmentLength: 2, Cost: 1.000})
	// within epsilon of the first, but shorter segment: should NOT evict,
	// since equal-cost ties are broken by longer segment_length, and this
	// candidate is shorter.
	tk.Insert(Result{Start: 0, SegmentLength: 1, Cost: 1.005})
	snap := tk.Snapshot()
	if snap[0].SegmentLength != 2 {
		t.Fatalf("snapshot[0].SegmentLength = %d, want 2 (epsilon-tied candidate should not evict on a worse tiebreak)", snap[0].SegmentLength)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	tk := New(2, 1e-9)
	tk.Insert(Result{Start: 0, SegmentLength: 1, Cost: 1})
	snap := tk.Snapshot()
	tk.Insert(Result{Start: 1, SegmentLength: 1, Cost: 0})
	if len(snap) != 1 {
		t.Fatalf("expected earlier snapshot to remain length 1, got %d", len(snap))
	}
}
