package main

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/scene-pilot/config"
	"github.com/lixenwraith/scene-pilot/physics"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// seedScene populates the world with a deterministic demo arrangement:
// scattered free spheres plus one articulated chain hanging in front of
// the agent's start position.
func seedScene(world *physics.World, cfg config.SceneConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	for i := 0; i < cfg.RigidBodies; i++ {
		world.AddRigid(physics.RigidBody{
			Name: fmt.Sprintf("sphere_%d", i),
			Pos: vmath.Vec3{
				X: rng.Float64()*6 - 3,
				Y: 0.5 + rng.Float64()*2,
				Z: rng.Float64()*4 - 2,
			},
			Mass:   1,
			Radius: 0.2 + rng.Float64()*0.3,
		})
	}

	links := make([]physics.Link, cfg.LinkCount)
	for i := range links {
		links[i] = physics.Link{
			Name:   fmt.Sprintf("segment_%d", i),
			Offset: vmath.Vec3{Y: -0.4 * float64(i+1)},
			Radius: 0.15,
		}
	}
	world.AddArticulated(physics.ArticulatedBody{
		Name:   "chain",
		Pos:    vmath.Vec3{Y: 2.5},
		Mass:   2,
		Radius: 0.25,
		Links:  links,
	})
}
