package main

import (
	"github.com/akmonengine/affine"
	"github.com/akmonengine/affine/internal/logging"
	"github.com/akmonengine/affine/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Entity is a named transform animated between two keyframes
type Entity struct {
	ID     uuid.UUID
	Name   string
	Parent int // index of the parent entity, -1 for roots
	Start  affine.Transform
	End    affine.Transform
	Bounds affine.AABB // local space

	World affine.Transform
}

type Scene struct {
	Entities []*Entity
	Frames   int
	Workers  int

	logger logging.Logger
}

func NewScene(cfg *Config, logger logging.Logger) *Scene {
	scene := &Scene{
		Frames:  cfg.Frames,
		Workers: cfg.Workers,
		logger:  logger,
	}

	index := make(map[string]int, len(cfg.Entities))
	for i, e := range cfg.Entities {
		start := e.Start.Transform()
		end := start
		if e.End != nil {
			end = e.End.Transform()
		}

		halfExtents := mgl64.Vec3{1, 1, 1}
		if e.HalfExtents != nil {
			halfExtents = *e.HalfExtents
		}

		parent := -1
		if e.Parent != "" {
			parent = index[e.Parent]
		}

		scene.Entities = append(scene.Entities, &Entity{
			ID:     uuid.New(),
			Name:   e.Name,
			Parent: parent,
			Start:  start,
			End:    end,
			Bounds: affine.AABB{Min: halfExtents.Mul(-1), Max: halfExtents},
			World:  start,
		})
		index[e.Name] = i
	}

	return scene
}

// Step poses every entity at alpha (0 on the first frame, 1 on the last) and returns the packed model matrices.
func (s *Scene) Step(alpha float64) ([]byte, error) {
	starts := make([]affine.Transform, len(s.Entities))
	ends := make([]affine.Transform, len(s.Entities))
	for i, e := range s.Entities {
		starts[i] = e.Start
		ends[i] = e.End
	}

	locals, err := affine.MixAll(starts, ends, alpha, s.Workers)
	if err != nil {
		return nil, err
	}

	worlds := make([]affine.Transform, len(s.Entities))
	for i, e := range s.Entities {
		world := locals[i]
		if e.Parent >= 0 {
			// parents are declared first, so their world transform is already up to date
			world = affine.Combine(worlds[e.Parent], locals[i])
		}
		worlds[i] = world.Normalized()
		e.World = worlds[i]
	}

	return render.ModelBuffer(worlds, s.Workers), nil
}

// Run steps through every frame, logging the resulting matrices at debug level
func (s *Scene) Run() error {
	for frame := 0; frame < s.Frames; frame++ {
		alpha := 0.0
		if s.Frames > 1 {
			alpha = float64(frame) / float64(s.Frames-1)
		}

		buf, err := s.Step(alpha)
		if err != nil {
			return err
		}

		if s.logger.DebugEnabled() {
			s.logger.Debugf("frame %d alpha=%.3f buffer=%d bytes", frame, alpha, len(buf))
			for _, e := range s.Entities {
				bounds := affine.TransformAABB(e.World, e.Bounds)
				s.logger.Debugf("  %s (%s) model=%v bounds=[%v %v]",
					e.Name, e.ID, affine.TransformToMatrix(e.World), bounds.Min, bounds.Max)
			}
		}
	}

	for _, e := range s.Entities {
		s.logger.Infof("%s (%s) final position=%v", e.Name, e.ID, e.World.Position)
	}

	return nil
}
