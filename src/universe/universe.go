package universe

import "time"

//Universe drives the grid through the generations and notifies the viewers
type Universe interface {
	Status() Status
	Options() Options
	Grid() *Grid
	StateCh() chan Status
	Settle(g *Grid)
	Reseed(seed int64)
	InverseCell(x int, y int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Reset()
	Close()
}

//Options represents the Universe's configurable options
type Options struct {
	Interval time.Duration
	MaxSteps int //0 means no limit, the run stops at the fixed point only
	Policy   ExpandPolicy
	Advanced map[string]interface{} //advanced options, printed by viewers as is
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	Width         int
	Height        int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//RunningState is the universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 500
	DefMaxSteps           = 0
	DefWidth              = 40
	DefHeight             = 15
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var runningStateNames = map[RunningState]string{
	RunningStateManual:   "waiting",
	RunningStateStep:     "do the step",
	RunningStateRun:      "running",
	RunningStateFinished: "finished",
}

func (s RunningState) String() string {
	return runningStateNames[s]
}

var DefaultUniverseOptions = Options{
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
	Policy:   ExpandPerEdge,
}
