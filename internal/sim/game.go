package sim

type GameState int

const (
	StatePlaying  GameState = iota
	StateFinished           // portal reached
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Game drives a World at a fixed step from variable frame times and keeps the
// run clock. The world stays reachable for rendering and event subscriptions.
type Game struct {
	World *World
	State GameState

	RunTime  float64 // seconds since the last reset, frozen on finish
	BestTime float64 // fastest finish so far, 0 until the first one
	Attempts int

	accumulator float64
}

func NewGame(w *World) *Game {
	g := &Game{World: w, Attempts: 1}
	w.Subscribe(EventPortalTriggered, func(Event) { g.finish() })
	w.Subscribe(EventWorldReset, func(Event) { g.restart() })
	return g
}

// Update consumes frameDT in StepDT ticks and returns how many ran. Frame time
// is capped at MaxFrameTime; non-finite or negative frame times are dropped.
func (g *Game) Update(frameDT float64, in Input) int {
	if !finite(frameDT) || frameDT <= 0 {
		return 0
	}
	if frameDT > MaxFrameTime {
		frameDT = MaxFrameTime
	}
	g.accumulator += frameDT

	steps := 0
	for g.accumulator >= StepDT {
		if g.State == StatePlaying {
			g.RunTime += StepDT
		}
		g.World.Advance(StepDT, in)
		g.accumulator -= StepDT
		steps++
	}
	return steps
}

// Reset starts a new attempt on the same layout. The best time is kept.
// Resetting the world directly has the same effect.
func (g *Game) Reset() {
	g.World.Reset()
}

func (g *Game) restart() {
	g.State = StatePlaying
	g.RunTime = 0
	g.accumulator = 0
	g.Attempts++
}

func (g *Game) finish() {
	if g.State == StateFinished {
		return
	}
	g.State = StateFinished
	if g.BestTime == 0 || g.RunTime < g.BestTime {
		g.BestTime = g.RunTime
	}
}
