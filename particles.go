package main

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlange-42/ark/ecs"
)

// Splash particle components.
type splashPos struct{ X, Y float32 }
type splashVel struct{ X, Y float32 }
type splashLife struct{ Ticks int32 }

// splashSystem owns the decorative splash particles. Particles are pure
// cosmetics layered over the water; they never feed back into the field.
type splashSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[splashPos, splashVel, splashLife]
	filter *ecs.Filter3[splashPos, splashVel, splashLife]
	rng    *rand.Rand
	dead   []ecs.Entity
}

func newSplashSystem() *splashSystem {
	world := ecs.NewWorld()
	return &splashSystem{
		world:  world,
		mapper: ecs.NewMap3[splashPos, splashVel, splashLife](world),
		filter: ecs.NewFilter3[splashPos, splashVel, splashLife](world),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Spawn emits n particles at the given pixel position with upward velocity.
func (s *splashSystem) Spawn(x, y, n int) {
	for i := 0; i < n; i++ {
		pos := splashPos{X: float32(x), Y: float32(y)}
		vel := splashVel{
			X: s.rng.Float32()*4 - 2,
			Y: -(s.rng.Float32()*4 + 1),
		}
		life := splashLife{Ticks: particleLifeTicks}
		s.mapper.NewEntity(&pos, &vel, &life)
	}
}

// Update applies gravity and retires expired particles. Removal happens in a
// second pass; the world must not change while a query is live.
func (s *splashSystem) Update() {
	s.dead = s.dead[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, vel, life := query.Get()
		vel.Y += particleGravity
		pos.X += vel.X
		pos.Y += vel.Y
		life.Ticks--
		if life.Ticks <= 0 {
			s.dead = append(s.dead, query.Entity())
		}
	}
	for _, e := range s.dead {
		s.mapper.Remove(e)
	}
}

// Count returns the number of live particles.
func (s *splashSystem) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Draw renders the particles as white circles that shrink as they age.
func (s *splashSystem) Draw(screen *ebiten.Image) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, life := query.Get()
		r := float32(life.Ticks / 10)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, pos.X, pos.Y, r, color.White, false)
	}
}
