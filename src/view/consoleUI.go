package view

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gridlife/src/universe"
)

//pane names
const (
	paneBanner   = "banner"
	paneSettings = "settings"
	paneCounters = "counters"
	paneGrid     = "grid"
	paneKeys     = "keys"
)

const (
	sidebarWidth = 28
	bannerHeight = 3
	keysHeight   = 2
	minHeight    = 20

	title        = "Conway's Game of Life on the growing grid"
	cropNotice   = "the grid is larger than the pane"
	tooSmallText = "enlarge the terminal"
)

//terminalGlyphs draws live cells as blue blocks over the shaded background
var terminalGlyphs = universe.Glyphs{
	Live: aurora.Blue("█").BgBrightBlue().String(),
	Dead: "░",
}

//modeColors colours the running mode in the counters pane
var modeColors = map[universe.RunningState]aurora.Color{
	universe.RunningStateManual:   aurora.BlueFg,
	universe.RunningStateRun:      aurora.CyanFg,
	universe.RunningStateFinished: aurora.RedFg,
}

//control binds the key to the universe command
//pane limits the key to the pane, empty for the global keys
type control struct {
	key   interface{}
	label string
	descr string
	pane  string
	run   func(v *gocui.View) error
}

//paneSpec places the framed pane, rect gets the terminal size
type paneSpec struct {
	name  string
	title string
	rect  func(w, h int) (x0, y0, x1, y1 int)
}

//Terminal is the interactive viewer, the universe is controlled with the keyboard and the mouse
type Terminal struct {
	u        universe.Universe
	gui      *gocui.Gui
	controls []control
	panes    []paneSpec
	seed     int64
}

//NewViewTerminal creates the interactive viewer
//seed is the first seed used by the reseed command, every reseed takes the next one
func NewViewTerminal(seed int64) *Terminal {
	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	gui.Mouse = true

	t := &Terminal{gui: gui, seed: seed}
	t.controls = []control{
		{gocui.KeyCtrlC, "^C", "Exit", "", func(*gocui.View) error { return gocui.ErrQuit }},
		{'n', "N", "Next generation", "", t.universeCmd(func(u universe.Universe) { u.Step() })},
		{'r', "R", "Run", "", t.universeCmd(func(u universe.Universe) { u.Run() })},
		{'s', "S", "Stop", "", t.universeCmd(func(u universe.Universe) { u.Stop() })},
		{'c', "C", "Back to the initial grid", "", t.universeCmd(func(u universe.Universe) { u.Reset() })},
		{'w', "W", "Random grid", "", t.reseed},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", paneGrid, t.toggleCell},
	}
	t.panes = []paneSpec{
		{paneSettings, "Settings", func(w, h int) (int, int, int, int) {
			return 0, bannerHeight, sidebarWidth, sidebarSplit(h)
		}},
		{paneCounters, "Counters", func(w, h int) (int, int, int, int) {
			return 0, sidebarSplit(h) + 1, sidebarWidth, h - keysHeight - bannerHeight
		}},
		{paneGrid, "Grid", func(w, h int) (int, int, int, int) {
			return sidebarWidth + 1, bannerHeight, w - 1, h - keysHeight - bannerHeight
		}},
	}

	gui.SetManagerFunc(t.layout)
	for _, c := range t.controls {
		run := c.run
		if err := gui.SetKeybinding(c.pane, c.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return run(v) }); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

func (t *Terminal) Register(u universe.Universe) {
	t.u = u
}

//Start runs the terminal main loop until the exit key
func (t *Terminal) Start() {
	defer t.gui.Close()
	if err := t.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

//Refresh redraws the panes, it is called from the universe goroutine
func (t *Terminal) Refresh() {
	t.gui.Update(func(*gocui.Gui) error {
		t.draw()
		return nil
	})
}

//draw writes the universe state to every pane that is on the screen
func (t *Terminal) draw() {
	st := t.u.Status()
	if v, err := t.gui.View(paneSettings); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, strings.Join(settingsLines(t.u.Options()), "\n"))
	}
	if v, err := t.gui.View(paneCounters); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, strings.Join(counterLines(st), "\n"))
	}
	if v, err := t.gui.View(paneGrid); err == nil {
		v.Clear()
		w, h := v.Size()
		_, _ = fmt.Fprint(v, fieldText(t.u.Grid(), w, h, terminalGlyphs))
	}
}

func (t *Terminal) layout(gui *gocui.Gui) error {
	w, h := gui.Size()
	if h < minHeight {
		if err := t.banner(gui, h, tooSmallText); err != nil {
			return err
		}
		for _, p := range t.panes {
			_ = gui.DeleteView(p.name)
		}
		return nil
	}
	if err := t.banner(gui, bannerHeight, title); err != nil {
		return err
	}

	for _, p := range t.panes {
		x0, y0, x1, y1 := p.rect(w, h)
		v, err := gui.SetView(p.name, x0, y0, x1, y1)
		if err == gocui.ErrUnknownView {
			v.Title = p.title
			v.Frame = true
		} else if err != nil {
			return err
		}
	}

	v, err := gui.SetView(paneKeys, -1, h-keysHeight-bannerHeight, w, h-bannerHeight)
	if err == gocui.ErrUnknownView {
		v.Frame = false
		_, _ = fmt.Fprint(v, keysLine(t.controls))
	} else if err != nil {
		return err
	}

	//the grid pane size follows the terminal, so the panes are drawn on every layout
	t.draw()
	return nil
}

//banner fills the top of the terminal with the centered text
func (t *Terminal) banner(gui *gocui.Gui, height int, text string) error {
	w, _ := gui.Size()
	v, err := gui.SetView(paneBanner, -1, -1, w+1, height)
	if err == gocui.ErrUnknownView {
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	} else if err != nil {
		return err
	}
	v.Clear()
	_, _ = fmt.Fprint(v, strings.Repeat("\n", height/2)+centered(text, w))
	return nil
}

func (t *Terminal) universeCmd(cmd func(u universe.Universe)) func(*gocui.View) error {
	return func(*gocui.View) error {
		cmd(t.u)
		return nil
	}
}

func (t *Terminal) reseed(*gocui.View) error {
	t.seed++
	t.u.Reseed(t.seed)
	return nil
}

func (t *Terminal) toggleCell(v *gocui.View) error {
	x, y := v.Cursor()
	t.u.InverseCell(x, y)
	return nil
}

//sidebarSplit is the last row of the settings pane
func sidebarSplit(h int) int {
	return bannerHeight + (h-keysHeight-2*bannerHeight)/2
}

//fieldText renders the part of the grid that fits w columns and h rows
//the cropped grid gets the notice as its last row
func fieldText(g *universe.Grid, w, h int, gl universe.Glyphs) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	cropped := g.Width() > w || g.Height() > h
	rows := min(g.Height(), h)
	if cropped {
		rows = min(g.Height(), h-1)
	}
	lines := make([]string, 0, rows+1)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < min(g.Width(), w); x++ {
			c, _ := g.Cell(x, y)
			b.WriteString(gl.Glyph(c))
		}
		lines = append(lines, b.String())
	}
	if cropped {
		lines = append(lines, aurora.Red(cropNotice).BgBlack().String())
	}
	return strings.Join(lines, "\n")
}

func settingsLines(o universe.Options) []string {
	lines := []string{
		prop("Interval", o.Interval),
		prop("Expand", o.Policy),
	}
	if o.MaxSteps > 0 {
		lines = append(lines, prop("Generations", fmt.Sprintf("%v max", o.MaxSteps)))
	}
	return lines
}

func counterLines(st universe.Status) []string {
	mode := st.RunningMode.String()
	if c, ok := modeColors[st.RunningMode]; ok {
		mode = aurora.Colorize(mode, c).String()
	}
	return []string{
		prop("Generation", st.Generation),
		prop("Dimension", fmt.Sprintf("%v x %v", st.Width, st.Height)),
		prop("Live cells", st.LiveCells),
		prop("Step time", st.IterationTime.Round(time.Microsecond)),
		prop("Mode", mode),
	}
}

func keysLine(controls []control) string {
	keys := make([]string, 0, len(controls))
	for _, c := range controls {
		keys = append(keys, aurora.Green(c.label).String()+": "+c.descr)
	}
	return "KEYS: " + strings.Join(keys, ", ")
}

func prop(name string, value interface{}) string {
	return fmt.Sprintf(" %v: %v", aurora.Green(name), value)
}

//centered pads text to the middle of width columns, the text is cut when it doesn't fit
func centered(text string, width int) string {
	r := []rune(text)
	if width <= 0 {
		return ""
	}
	if len(r) > width {
		return string(r[:width])
	}
	return strings.Repeat(" ", (width-len(r))/2) + text
}
