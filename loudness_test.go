package main

import "testing"

func TestDrainMaxEmpty(t *testing.T) {
	q := newLoudnessQueue(8)
	if got := q.DrainMax(); got != 0 {
		t.Errorf("DrainMax on empty queue = %v, want 0", got)
	}
}

func TestDrainMaxTakesMaximumAndEmpties(t *testing.T) {
	q := newLoudnessQueue(8)
	for _, v := range []float32{0.1, 0.7, 0.3} {
		q.Push(v)
	}
	if got := q.DrainMax(); got != float64(float32(0.7)) {
		t.Errorf("DrainMax = %v, want 0.7", got)
	}
	if got := q.DrainMax(); got != 0 {
		t.Errorf("second DrainMax = %v, want 0 (samples not carried over)", got)
	}
}

func TestPushDropsWhenFull(t *testing.T) {
	q := newLoudnessQueue(2)
	q.Push(0.1)
	q.Push(0.2)
	q.Push(0.9) // dropped, queue is full
	if got := q.DrainMax(); got != float64(float32(0.2)) {
		t.Errorf("DrainMax = %v, want 0.2 (overflow sample dropped)", got)
	}
}
