package main

import "testing"

func TestSplashLifecycle(t *testing.T) {
	s := newSplashSystem()
	s.Spawn(100, 100, pressParticleCount)
	if got := s.Count(); got != pressParticleCount {
		t.Fatalf("count = %d after spawn, want %d", got, pressParticleCount)
	}

	for i := 0; i < particleLifeTicks-1; i++ {
		s.Update()
	}
	if got := s.Count(); got != pressParticleCount {
		t.Errorf("count = %d one tick before expiry, want %d", got, pressParticleCount)
	}
	s.Update()
	if got := s.Count(); got != 0 {
		t.Errorf("count = %d after expiry, want 0", got)
	}
}

func TestSplashGravityPullsDown(t *testing.T) {
	s := newSplashSystem()
	s.Spawn(50, 50, 1)
	// Gravity dominates the initial upward velocity well before the particle
	// expires; one tick before expiry it has fallen past its spawn point.
	for i := 0; i < particleLifeTicks-1; i++ {
		s.Update()
	}
	seen := false
	query := s.filter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()
		seen = true
		if vel.Y <= 0 {
			t.Errorf("vertical velocity = %v at end of life, want positive", vel.Y)
		}
		if pos.Y <= 50 {
			t.Errorf("particle y = %v, want fallen below spawn point", pos.Y)
		}
	}
	if !seen {
		t.Fatal("particle expired early")
	}
}
