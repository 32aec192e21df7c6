package view

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"gridlife/src/universe"
)

//ConsoleOut draws every generation to the plain terminal
//and prints the report when the universe is finished
//the first write error stops the output, see Failed
type ConsoleOut struct {
	u         universe.Universe
	w         io.Writer
	glyphs    universe.Glyphs
	startTime time.Time

	mu       sync.Mutex
	err      error
	failedCh chan struct{}
}

func NewConsoleOut(w io.Writer, gl universe.Glyphs) *ConsoleOut {
	return &ConsoleOut{w: w, glyphs: gl, failedCh: make(chan struct{})}
}

func (c *ConsoleOut) Refresh() {
	if c.Err() != nil {
		return
	}
	if err := WriteFrame(c.w, c.u.Grid(), c.glyphs); err != nil {
		c.fail(err)
		return
	}
	st := c.u.Status()
	if st.RunningMode != universe.RunningStateFinished {
		return
	}
	o := c.u.Options()
	resultData := map[string]interface{}{
		"Dimension":  fmt.Sprintf("%v x %v", st.Width, st.Height),
		"Live cells": st.LiveCells,
		"Interval":   o.Interval,
	}
	if !c.startTime.IsZero() {
		resultData["Total time"] = time.Since(c.startTime).Round(time.Millisecond)
	}
	for k, v := range o.Advanced {
		resultData[k] = v
	}
	if _, err := fmt.Fprintf(c.w, "Finished on generation %v.\n", st.Generation); err != nil {
		c.fail(err)
		return
	}
	c.printHashData(resultData)
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
}

//Start clears the screen and draws the initial generation
func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	if err := ClearScreen(c.w); err != nil {
		c.fail(err)
		return
	}
	c.Refresh()
}

//Err returns the first write error
func (c *ConsoleOut) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

//Failed is closed on the first write error
func (c *ConsoleOut) Failed() <-chan struct{} {
	return c.failedCh
}

func (c *ConsoleOut) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return
	}
	c.err = errors.Wrap(err, "[ConsoleOut] failed to write")
	close(c.failedCh)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		if _, err := fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName]); err != nil {
			c.fail(err)
			return
		}
	}
}
