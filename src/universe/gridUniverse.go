package universe

import (
	"sync"
	"time"
)

//GridUniverse is the universe's engine over the expanding Grid
//implements Universe interface
//all commands are executed one by one by the main loop goroutine
type GridUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	grid struct {
		current *Grid
		initial *Grid
		sync.Mutex
	}
	runs      int //id of the latest run loop, older loops exit when they see a newer one
	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan struct{}
	closeOnce sync.Once
}

//NewGridUniverse creates the GridUniverse instance settled with g
//stateCh may be nil, otherwise every running state switch is written to it
func NewGridUniverse(g *Grid, o *Options, stateCh chan Status) *GridUniverse {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	if g == nil {
		g = &Grid{}
	}
	u := GridUniverse{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan struct{}),
		stateCh:   stateCh,
	}
	u.options.Advanced = map[string]interface{}{"expand": o.Policy.String()}
	for k, v := range o.Advanced {
		u.options.Advanced[k] = v
	}
	u.grid.initial = g
	u.grid.current = g
	u.updateStatus(g, 0)
	go u.mainLoop()
	return &u
}

//Settle replaces the current grid and makes it the initial one, counters are reset
func (u *GridUniverse) Settle(g *Grid) {
	u.command(func() {
		u.grid.Lock()
		u.grid.initial = g
		u.grid.Unlock()
		u.reset()
	})
}

//Reseed settles the universe with the random grid of the initial dimensions
//ignored while the simulation is running
func (u *GridUniverse) Reseed(seed int64) {
	u.command(func() {
		if mode := u.runningMode(); mode != RunningStateManual && mode != RunningStateFinished {
			return
		}
		u.grid.Lock()
		w, h := u.grid.initial.Width(), u.grid.initial.Height()
		if w == 0 || h == 0 {
			w, h = DefWidth, DefHeight
		}
		u.grid.initial = NewRandomGrid(w, h, seed)
		u.grid.Unlock()
		u.reset()
	})
}

//InverseCell inverses the cell state at point x, y
//the finished universe becomes manual again, so the edited grid can be simulated
func (u *GridUniverse) InverseCell(x int, y int) {
	u.command(func() {
		u.grid.Lock()
		u.grid.current = u.grid.current.Inverse(x, y)
		g := u.grid.current
		u.grid.Unlock()
		u.state.Lock()
		gen := u.state.Generation
		u.state.Unlock()
		u.updateStatus(g, gen)
		if u.runningMode() == RunningStateFinished {
			st := u.setRunningState(RunningStateManual)
			u.refreshView()
			u.publish(st)
			return
		}
		u.refreshView()
	})
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *GridUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *GridUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *GridUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *GridUniverse) Options() Options {
	return u.options
}

//Grid returns the current generation
func (u *GridUniverse) Grid() *Grid {
	u.grid.Lock()
	defer u.grid.Unlock()
	return u.grid.current
}

//Run starts the universe simulation, returns immediately
func (u *GridUniverse) Run() {
	u.command(u.run)
}

//Stop stops the universe simulation, returns immediately
func (u *GridUniverse) Stop() {
	u.command(u.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *GridUniverse) Step() {
	u.command(u.step)
}

//Reset returns the universe to the initial grid and resets all counters, returns immediately
func (u *GridUniverse) Reset() {
	u.command(u.reset)
}

//Close stops the main loop, returns immediately
//commands sent after Close are dropped
func (u *GridUniverse) Close() {
	u.closeOnce.Do(func() {
		close(u.closeCh)
	})
}

//command queues cmd for the main loop, false if the universe is closed
func (u *GridUniverse) command(cmd func()) bool {
	select {
	case u.controlCh <- cmd:
		return true
	case <-u.closeCh:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *GridUniverse) mainLoop() {
	for {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case <-u.closeCh:
			return
		}
	}
}

func (u *GridUniverse) runningMode() RunningState {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.RunningMode
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *GridUniverse) switchRunningState(to RunningState) {
	u.publish(u.setRunningState(to))
}

func (u *GridUniverse) setRunningState(to RunningState) Status {
	u.state.Lock()
	defer u.state.Unlock()
	u.state.RunningMode = to
	return u.state.Status
}

//publish writes the status to the stateCh if there is one
func (u *GridUniverse) publish(st Status) {
	if u.stateCh != nil {
		select {
		case u.stateCh <- st:
		case <-u.closeCh:
		}
	}
}

//updateStatus refreshes the counters for the grid g
func (u *GridUniverse) updateStatus(g *Grid, generation int) {
	u.state.Lock()
	u.state.Generation = generation
	u.state.LiveCells = g.LiveCells()
	u.state.Width = g.Width()
	u.state.Height = g.Height()
	u.state.Unlock()
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the fixed point or MaxSteps is reached
func (u *GridUniverse) run() {
	if mode := u.runningMode(); mode == RunningStateRun || mode == RunningStateFinished {
		return
	}
	u.state.Lock()
	u.runs++
	id := u.runs
	u.state.Unlock()
	u.switchRunningState(RunningStateRun)
	go func() {
		done := make(chan struct{}, 1)
		for u.running(id) {
			ok := u.command(func() {
				u.step()
				done <- struct{}{}
			})
			if !ok {
				return
			}
			select {
			case <-done:
			case <-u.closeCh:
				return
			}
			if u.options.Interval > 0 && u.running(id) {
				time.Sleep(u.options.Interval)
			}
		}
	}()
}

//running reports whether the run loop id is the latest one and the universe is still running
func (u *GridUniverse) running(id int) bool {
	u.state.Lock()
	defer u.state.Unlock()
	return u.runs == id && u.state.RunningMode == RunningStateRun
}

//stop stops the universe running cycle
func (u *GridUniverse) stop() {
	if u.runningMode() == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step calculates the next generation
//the universe is finished when the generation is identical to the previous one
func (u *GridUniverse) step() {
	rm := u.runningMode()
	if rm == RunningStateFinished {
		return
	}
	u.switchRunningState(RunningStateStep)

	start := time.Now()
	u.grid.Lock()
	next, changed := u.grid.current.Next(u.options.Policy)
	u.grid.current = next
	u.grid.Unlock()

	u.state.Lock()
	gen := u.state.Generation
	u.state.IterationTime = time.Since(start)
	u.state.Unlock()
	if changed {
		gen++
	}
	u.updateStatus(next, gen)

	if !changed || (u.options.MaxSteps > 0 && gen >= u.options.MaxSteps) {
		rm = RunningStateFinished
	}
	//viewers are done with the generation before the control software sees the new state
	st := u.setRunningState(rm)
	u.refreshView()
	u.publish(st)
}

//reset settles the initial grid again, reset all counters
func (u *GridUniverse) reset() {
	u.grid.Lock()
	u.grid.current = u.grid.initial
	g := u.grid.current
	u.grid.Unlock()
	u.state.Lock()
	u.state.IterationTime = 0
	u.state.Unlock()
	u.updateStatus(g, 0)
	st := u.setRunningState(RunningStateManual)
	u.refreshView()
	u.publish(st)
}

//refreshView calls Refresh event for all registered views
func (u *GridUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
