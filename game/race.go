package game

import (
	"log"
	"math/rand/v2"
	"sync"

	"github.com/golangdaddy/kart/car"
	"github.com/golangdaddy/kart/lanecontroller"
	"github.com/golangdaddy/kart/models"
	"github.com/golangdaddy/kart/road"
	"github.com/golangdaddy/kart/surface"
)

// DriveTask is the scheduler name of the race tick
const DriveTask = "drive"

// State is the phase a race is in
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Result is the score of a finished race
type Result struct {
	StartedAt  int64 // Clock milliseconds at start
	FinishedAt int64 // Clock milliseconds at finish
	Seconds    int64 // Whole seconds between start and finish
	Cycles     int   // Ticks driven
}

// Race is one player's session on the track.
// Tick, HandleKey and Start may be called from different goroutines.
type Race struct {
	mu sync.Mutex

	cfg       *models.Config
	geometry  road.Geometry
	wall      rune
	surface   surface.Surface
	scheduler Scheduler
	clock     Clock

	track *road.Track
	car   *car.Car
	lanes *lanecontroller.LaneController

	state      State
	cycle      int
	startedAt  int64
	finishedAt int64

	onFinish func(Result)
}

// NewRace wires a race to its host collaborators.
// rng seeds the track walk and is reused across restarts.
func NewRace(cfg *models.Config, s surface.Surface, sched Scheduler, clock Clock, rng *rand.Rand) *Race {
	g := cfg.Geometry()
	return &Race{
		cfg:       cfg,
		geometry:  g,
		wall:      cfg.WallRune(),
		surface:   s,
		scheduler: sched,
		clock:     clock,
		track:     road.NewTrack(g, rng),
		car:       car.NewCar(g, cfg.GlyphRune()),
		lanes:     lanecontroller.NewLaneController(cfg.TrackWidth, cfg.Tiers),
		state:     StateIdle,
	}
}

// OnFinish registers a callback run after the race finishes.
// It is called without the race lock held.
func (r *Race) OnFinish(fn func(Result)) {
	r.mu.Lock()
	r.onFinish = fn
	r.mu.Unlock()
}

// Start begins a fresh race, restarting one already in progress
func (r *Race) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRunning {
		r.scheduler.Cancel(DriveTask)
		log.Printf("[Race] Restarting at cycle %d", r.cycle)
	}

	s := r.surface
	s.SetForeground(surface.ColorWhite)
	s.SetBackground(surface.ColorBlack)
	s.Clear()
	s.HideCursor()
	road.DrawBorder(s, r.geometry)

	r.track.Reset()
	r.car.Reset()
	r.lanes.Reset()
	r.cycle = 0
	r.startedAt = r.clock.NowMillis()
	r.finishedAt = 0
	r.state = StateRunning

	car.RenderCar(s, r.car)
	road.DrawSpeed(s, r.geometry, r.lanes.Tier().Level)
	s.Show()

	period := r.lanes.Tier().Period
	r.scheduler.Schedule(DriveTask, r.Tick, 0, period)
	log.Printf("[Race] Started: %d cycles, period %v", r.cfg.MaxCycles, period)
}

// Tick advances the race by one step. It is the drive task body.
func (r *Race) Tick() {
	r.mu.Lock()
	finished := r.tickLocked()
	onFinish := r.onFinish
	result := r.resultLocked()
	r.mu.Unlock()

	if finished && onFinish != nil {
		onFinish(result)
	}
}

// tickLocked reports whether this tick finished the race
func (r *Race) tickLocked() bool {
	if r.state != StateRunning {
		return false
	}

	r.cycle++
	if r.cycle == r.cfg.MaxCycles {
		r.finishLocked()
		return true
	}

	s := r.surface
	r.track.Advance()
	road.Draw(s, r.track, r.wall)
	car.RenderCar(s, r.car)
	road.DrawSpeed(s, r.geometry, r.lanes.Tier().Level)

	res := r.lanes.Evaluate(r.car.X, r.track.Bottom())
	if res.Collided {
		s.SetBackground(surface.ColorRed)
	} else {
		s.SetBackground(surface.ColorBlack)
	}
	if res.TierChanged {
		r.scheduler.ChangePeriod(DriveTask, res.Tier.Period)
		log.Printf("[Race] Cycle %d: tier %d, period %v", r.cycle, res.Tier.Level, res.Tier.Period)
	}

	s.Show()
	return false
}

func (r *Race) finishLocked() {
	s := r.surface
	s.SetBackground(surface.ColorBlack)
	r.scheduler.Cancel(DriveTask)

	r.finishedAt = r.clock.NowMillis()
	r.state = StateFinished
	seconds := (r.finishedAt - r.startedAt) / 1000

	s.Clear()
	s.Printf("YOU WIN!\r\n")
	s.Printf("Your time was %d seconds!", seconds)
	s.Show()
	log.Printf("[Race] Finished after %d cycles in %d seconds", r.cycle, seconds)
}

// HandleKey steers the car for a single keypress.
// Keys are ignored unless the race is running.
func (r *Race) HandleKey(b byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRunning || r.cycle == r.cfg.MaxCycles {
		return
	}

	var moved bool
	switch CommandForKey(b) {
	case CommandLeft:
		moved = car.Steer(r.surface, r.car, r.car.MoveLeft)
	case CommandRight:
		moved = car.Steer(r.surface, r.car, r.car.MoveRight)
	default:
		return
	}
	if moved {
		r.surface.Show()
	}
}

// State returns the current phase
func (r *Race) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Cycle returns the number of ticks driven
func (r *Race) Cycle() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycle
}

// CarX returns the car's column
func (r *Race) CarX() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.car.X
}

// Tier returns the speed tier in effect
func (r *Race) Tier() lanecontroller.Tier {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lanes.Tier()
}

// SafeTicks returns the current collision-free streak
func (r *Race) SafeTicks() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lanes.SafeTicks()
}

// Bottom returns the boundary of the row the car drives on
func (r *Race) Bottom() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.track.Bottom()
}

// Result returns the score; it is only meaningful once finished
func (r *Race) Result() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resultLocked()
}

func (r *Race) resultLocked() Result {
	res := Result{
		StartedAt:  r.startedAt,
		FinishedAt: r.finishedAt,
		Cycles:     r.cycle,
	}
	if r.state == StateFinished {
		res.Seconds = (r.finishedAt - r.startedAt) / 1000
	}
	return res
}
