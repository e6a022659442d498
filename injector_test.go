package main

import (
	"math"
	"math/rand"
	"testing"
)

func testField(t *testing.T, w, h int) *waveField {
	t.Helper()
	f, err := newWaveField(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func fieldSum(f *waveField) float64 {
	var sum float64
	for _, v := range f.curr {
		sum += float64(v)
	}
	return sum
}

func TestPointerPressDisturbsAndSpawns(t *testing.T) {
	f := testField(t, 100, 100)
	spawns := 0
	d := newDisturbanceInjector(f, func(x, y int) {
		spawns++
		if x != 40 || y != 60 {
			t.Errorf("splash at (%d,%d), want (40,60)", x, y)
		}
	})
	d.PointerPressed(40, 60)
	if got := f.Height(40, 60); got != pressMagnitude {
		t.Errorf("height = %v, want %v", got, float32(pressMagnitude))
	}
	if spawns != 1 {
		t.Errorf("spawn callbacks = %d, want 1", spawns)
	}
}

func TestFirstDragSampleOnlySeeds(t *testing.T) {
	f := testField(t, 100, 100)
	d := newDisturbanceInjector(f, nil)
	d.PointerDragged(10, 10)
	if e := f.Energy(); e != 0 {
		t.Errorf("energy = %v after seeding drag sample, want 0", e)
	}
}

func TestDragMagnitudeFromDisplacement(t *testing.T) {
	f := testField(t, 100, 100)
	d := newDisturbanceInjector(f, nil)
	d.PointerDragged(10, 10)
	d.PointerDragged(13, 14) // displacement 5
	want := float32(5 * dragMagnitudeScale)
	if got := f.Height(13, 14); got != want {
		t.Errorf("height = %v, want %v", got, want)
	}
}

func TestDragMagnitudeCapped(t *testing.T) {
	f := testField(t, 200, 200)
	d := newDisturbanceInjector(f, nil)
	d.PointerDragged(0, 0)
	d.PointerDragged(199, 199) // displacement far beyond the cap
	want := float32(dragMagnitudeCap * dragMagnitudeScale)
	if got := f.Height(199, 199); got != want {
		t.Errorf("height = %v, want cap %v", got, want)
	}
}

func TestDragResetOnRelease(t *testing.T) {
	f := testField(t, 100, 100)
	d := newDisturbanceInjector(f, nil)
	d.PointerDragged(10, 10)
	d.PointerDragged(12, 10)
	d.PointerReleased()

	before := f.Energy()
	d.PointerDragged(90, 90) // must seed, not measure against (12,10)
	if got := f.Energy(); got != before {
		t.Errorf("energy changed from %v to %v on first motion after release", before, got)
	}
	d.PointerDragged(91, 90)
	want := float32(1 * dragMagnitudeScale)
	if got := f.Height(91, 90); got != want {
		t.Errorf("height = %v, want %v", got, want)
	}
}

func TestAudioBurstCountAndMagnitude(t *testing.T) {
	tests := []struct {
		name      string
		level     float64
		intensity float64
		wantCount int
	}{
		{"below threshold", 0.005, 1.0, 0},
		{"at threshold", audioLevelThreshold, 1.0, 0},
		{"zero", 0, 1.0, 0},
		{"negative", -0.5, 1.0, 0},
		{"moderate", 0.02, 1.0, 4},
		{"loud capped", 1.0, 1.0, audioBurstMax},
		{"scaled intensity", 0.02, 2.0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testField(t, 50, 50)
			d := newDisturbanceInjector(f, nil)
			d.rng = rand.New(rand.NewSource(1))

			got := d.AudioBurst(tt.level, tt.intensity)
			if got != tt.wantCount {
				t.Fatalf("AudioBurst(%v, %v) = %d, want %d", tt.level, tt.intensity, got, tt.wantCount)
			}
			// Disturbances are additive, so the field sum is count*magnitude
			// even when random positions collide.
			wantSum := float64(tt.wantCount) * tt.level * audioBurstScale * tt.intensity
			if diff := math.Abs(fieldSum(f) - wantSum); diff > 1e-3 {
				t.Errorf("field sum = %v, want %v", fieldSum(f), wantSum)
			}
		})
	}
}
