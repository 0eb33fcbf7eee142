package game

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
	"github.com/rs/zerolog"

	"github.com/cvltovbiboran/falling/internal/config"
	"github.com/cvltovbiboran/falling/internal/physics"
	"github.com/cvltovbiboran/falling/internal/world"
)

// Scenery rotation speeds, radians per second.
const (
	floorSpin  = 1.0
	tumbleX    = 1.0
	tumbleY    = 0.7
	lineShadow = 0.1
)

var starLineColor = world.RGBA{R: lineShadow, G: lineShadow, B: lineShadow, A: 0.8}

// Session is one run down the tunnel. It owns all gameplay state of the
// FallingGame screen and is thrown away on exit.
type Session struct {
	ECS   *ecs.World
	Space *physics.Space
	cfg   config.Falling
	level *world.Level
	log   zerolog.Logger

	actorMap    *ecs.Map3[Position, Actor, Body]
	teleportMap *ecs.Map3[Position, Teleport, Body]
	pickupMap   *ecs.Map3[Position, Hazard, Body]
	envMap      *ecs.Map3[Position, Hazard, Tumble]
	floorMap    *ecs.Map2[Position, Floor]

	actors    *ecs.Map[Actor]
	positions *ecs.Map[Position]
	hazards   *ecs.Map[Hazard]

	hazardFilter *ecs.Filter2[Position, Hazard]
	pickupFilter *ecs.Filter3[Position, Hazard, Body]
	envFilter    *ecs.Filter3[Position, Hazard, Tumble]
	floorFilter  *ecs.Filter2[Position, Floor]
	allFilter    *ecs.Filter1[Position]

	actor        ecs.Entity
	actorBody    physics.BodyID
	teleport     ecs.Entity
	teleportBody physics.BodyID
	floors       []ecs.Entity
	bodies       map[physics.BodyID]ecs.Entity

	Cycle   CycleState
	health  *FixedClock
	elapsed float64
	seq     int

	gameOverRequested bool
}

// NewSession spawns the actor, the teleport, the floor rings and the first
// batch of pickups.
func NewSession(ctx *Context) (*Session, error) {
	cfg := ctx.Config.Falling
	level := ctx.Level
	if level == nil {
		return nil, fmt.Errorf("new session: no level loaded")
	}

	margin := level.TunnelRadius + 8
	space, err := physics.NewSpace(physics.Settings{
		Gravity:   ctx.Config.Physics.Gravity,
		MaxTravel: ctx.Config.Physics.MaxTravel,
		CellSize:  ctx.Config.Physics.CellSize,
		Bounds: physics.Bounds{
			MinX: -margin,
			MinY: -(cfg.TeleportRadius + margin),
			MaxX: margin,
			MaxY: cfg.SpawnHeight + margin,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	w := ecs.NewWorld(1024)
	s := &Session{
		ECS:   w,
		Space: space,
		cfg:   cfg,
		level: level,
		log:   ctx.Log.With().Str("component", "falling").Logger(),

		actorMap:    ecs.NewMap3[Position, Actor, Body](w),
		teleportMap: ecs.NewMap3[Position, Teleport, Body](w),
		pickupMap:   ecs.NewMap3[Position, Hazard, Body](w),
		envMap:      ecs.NewMap3[Position, Hazard, Tumble](w),
		floorMap:    ecs.NewMap2[Position, Floor](w),

		actors:    ecs.NewMap[Actor](w),
		positions: ecs.NewMap[Position](w),
		hazards:   ecs.NewMap[Hazard](w),

		hazardFilter: ecs.NewFilter2[Position, Hazard](w),
		pickupFilter: ecs.NewFilter3[Position, Hazard, Body](w),
		envFilter:    ecs.NewFilter3[Position, Hazard, Tumble](w),
		floorFilter:  ecs.NewFilter2[Position, Floor](w),
		allFilter:    ecs.NewFilter1[Position](w),

		bodies: make(map[physics.BodyID]ecs.Entity),
		Cycle:  NewCycleState(),
		health: NewFixedClock(cfg.HealthStep),
	}

	s.spawnTeleport()
	s.spawnActor()
	s.spawnPickups(ctx.Rand)
	s.spawnEnvironment()

	s.log.Info().
		Int("floors", len(s.floors)).
		Int("bodies", space.Len()).
		Msg("session started")
	return s, nil
}

func (s *Session) spawnTeleport() {
	pos := Position{}
	id := s.Space.AddSphere(physics.Sensor,
		physics.NewLayers(physics.LayerTeleport, physics.LayerPlayer),
		pos.Vec(), s.cfg.TeleportRadius)
	s.teleport = s.teleportMap.NewEntity(&pos, &Teleport{Radius: s.cfg.TeleportRadius}, &Body{ID: id})
	s.teleportBody = id
	s.bodies[id] = s.teleport
}

func (s *Session) spawnActor() {
	pos := Position{Y: s.cfg.SpawnHeight}
	id := s.Space.AddSphere(physics.Dynamic,
		physics.NewLayers(physics.LayerPlayer, physics.LayerWorld, physics.LayerTeleport),
		pos.Vec(), s.cfg.ActorRadius)
	s.actor = s.actorMap.NewEntity(&pos, &Actor{Health: s.cfg.StartHealth}, &Body{ID: id})
	s.actorBody = id
	s.bodies[id] = s.actor
}

// spawnPickups places one random pickup on every hazard level.
func (s *Session) spawnPickups(rng *rand.Rand) {
	for _, j := range s.level.HazardLevels() {
		kind := world.PickupKinds[rng.IntN(len(world.PickupKinds))]
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * s.level.TunnelRadius
		pos := Position{
			X: math.Sin(angle) * radius,
			Y: s.level.RingY(j),
			Z: math.Cos(angle) * radius,
		}
		s.addPickup(kind, pos, j)
	}
}

// addPickup spawns one sensor hazard and returns its body.
func (s *Session) addPickup(kind world.HazardKind, pos Position, ring int) physics.BodyID {
	h := world.Template(kind).HalfExtent
	// Only pickups sit on the World layer; scenery never collides.
	id := s.Space.AddCuboid(physics.Sensor,
		physics.NewLayers(physics.LayerWorld, physics.LayerPlayer),
		pos.Vec(), physics.Vec3{X: h, Y: h, Z: h})
	e := s.pickupMap.NewEntity(&pos, &Hazard{Kind: kind, Seq: s.nextSeq(), Ring: ring, Visible: true}, &Body{ID: id})
	s.bodies[id] = e
	return id
}

func (s *Session) spawnEnvironment() {
	slots := s.level.RingSlots()
	s.floors = make([]ecs.Entity, 0, s.level.Floors)
	for j := 0; j < s.level.Floors; j++ {
		y := s.level.RingY(j)
		s.floors = append(s.floors, s.floorMap.NewEntity(
			&Position{Y: y},
			&Floor{Level: j, Direction: world.RingDirection(j)},
		))
		for _, slot := range slots {
			s.envMap.NewEntity(
				&Position{X: slot.X, Y: y, Z: slot.Z},
				&Hazard{Kind: world.HazardEnvironment, Seq: s.nextSeq(), Ring: j, Visible: true},
				&Tumble{Y: slot.Tumble},
			)
		}
	}
}

func (s *Session) nextSeq() int {
	s.seq++
	return s.seq
}

// despawnPickups removes every non-Environment hazard.
func (s *Session) despawnPickups() int {
	var doomed []ecs.Entity
	q := s.pickupFilter.Query()
	for q.Next() {
		_, _, body := q.Get()
		s.Space.Remove(body.ID)
		delete(s.bodies, body.ID)
		doomed = append(doomed, q.Entity())
	}
	for _, e := range doomed {
		s.ECS.RemoveEntity(e)
	}
	return len(doomed)
}

// Close despawns every entity and body of the session.
func (s *Session) Close() {
	var doomed []ecs.Entity
	q := s.allFilter.Query()
	for q.Next() {
		doomed = append(doomed, q.Entity())
	}
	for _, e := range doomed {
		s.ECS.RemoveEntity(e)
	}
	for id := range s.bodies {
		s.Space.Remove(id)
	}
	clear(s.bodies)
	s.floors = nil
}

// Elapsed returns the session time in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// mustActor returns the actor and its body. A session without its actor is
// broken beyond repair.
func (s *Session) mustActor() (*Actor, *physics.Body) {
	if !s.ECS.Alive(s.actor) {
		panic("falling: actor entity missing")
	}
	body := s.Space.Body(s.actorBody)
	if body == nil {
		panic("falling: actor body missing")
	}
	return s.actors.Get(s.actor), body
}

// Actor returns a copy of the actor component.
func (s *Session) Actor() Actor {
	a, _ := s.mustActor()
	return *a
}

// ActorBody returns the actor's physics body.
func (s *Session) ActorBody() *physics.Body {
	_, b := s.mustActor()
	return b
}

// Update runs one frame of the tunnel.
func (s *Session) Update(ctx *Context, dt float64) {
	s.elapsed += dt
	s.applyControls(ctx.Input)

	events := s.Space.Step(dt)
	s.syncActor()
	s.respond(ctx, events)
	s.dispatchCycle(ctx)
	s.animate(ctx, dt)

	for n := s.health.Advance(dt); n > 0; n-- {
		s.tickHealth(ctx)
	}
}

func (s *Session) syncActor() {
	_, body := s.mustActor()
	pos := s.positions.Get(s.actor)
	pos.X, pos.Y, pos.Z = body.Pos.X, body.Pos.Y, body.Pos.Z
}

// applyControls moves the actor on the horizontal plane and applies the brake.
func (s *Session) applyControls(in Input) {
	_, body := s.mustActor()
	step := s.cfg.MoveSpeed
	limit := s.level.TunnelRadius - s.cfg.MoveMargin
	try := func(dx, dz float64) {
		p := body.Pos
		p.X += dx
		p.Z += dz
		if math.Hypot(p.X, p.Z) <= limit {
			s.Space.SetPosition(s.actorBody, p)
		}
	}
	if in.Up {
		try(0, -step)
	}
	if in.Left {
		try(-step, 0)
	}
	if in.Down {
		try(0, step)
	}
	if in.Right {
		try(step, 0)
	}
	if in.Brake && body.Vel.Y < 0 {
		body.Vel.Y = math.Min(body.Vel.Y+s.cfg.BrakeStep, 0)
	}
}

// animate spins the floors, tumbles the scenery and draws star lines,
// depending on the current cycle.
func (s *Session) animate(ctx *Context, dt float64) {
	cycle := s.Cycle.Number
	if s.level.Animated(cycle) {
		spin := s.level.SpinFor(cycle)
		q := s.floorFilter.Query()
		for q.Next() {
			_, f := q.Get()
			dir := f.Direction
			if spin != 0 {
				dir = spin
			}
			f.Angle += dir * floorSpin * dt
		}
		eq := s.envFilter.Query()
		for eq.Next() {
			_, _, t := eq.Get()
			t.X += tumbleX * dt
			t.Y += tumbleY * dt
		}
	}
	if s.level.Lines(cycle) {
		s.drawStarLines(ctx)
	}
}

func (s *Session) drawStarLines(ctx *Context) {
	slots := s.level.RingSlots()
	top, bottom := s.viewRange()
	scale := s.level.LineScale
	for j, fe := range s.floors {
		y := s.level.RingY(j)
		if y < bottom || y > top {
			continue
		}
		_, floor := s.floorMap.Get(fe)
		for i := 0; i < s.level.StarPoints; i++ {
			a, b := slots[i*2], slots[s.level.StarPartner(i)*2]
			from := physics.Vec3{X: a.X, Z: a.Z}.RotateY(floor.Angle).Scale(scale)
			to := physics.Vec3{X: b.X, Z: b.Z}.RotateY(floor.Angle).Scale(scale)
			from.Y, to.Y = y, y
			ctx.Lines.Add(from, to, starLineColor, 0)
		}
	}
}

func (s *Session) viewRange() (top, bottom float64) {
	_, body := s.mustActor()
	return body.Pos.Y + s.level.FloorSpacing, body.Pos.Y - s.cfg.ViewDepth
}
