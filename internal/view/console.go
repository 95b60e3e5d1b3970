// Package view provides an interactive terminal viewer for a simulation.
package view

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"ternary-ca/internal/core"
)

const (
	statusView = "status"
	fieldView  = "field"
	helpView   = "help"

	leftColumnWidth = 28
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// Console shows the render window of a Sim in the terminal and lets the user
// step or run it. The Sim is only touched while holding mu.
type Console struct {
	sim      core.Sim
	interval time.Duration
	g        *gocui.Gui
	keys     []keyBinding

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewConsole prepares a viewer for sim. interval is the delay between steps
// in run mode.
func NewConsole(sim core.Sim, interval time.Duration) *Console {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	c := &Console{sim: sim, interval: interval}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit},
		{'q', "Q", "Exit", c.cmdQuit},
		{'n', "N", "Next step", c.cmdStep},
		{'r', "R", "Run", c.cmdRun},
		{'s', "S", "Stop", c.cmdStop},
	}
	return c
}

// Start opens the terminal UI and blocks until the user quits.
func (c *Console) Start() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer g.Close()
	c.g = g
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	err = g.MainLoop()
	c.cmdStop()
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(statusView, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(fieldView, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Space-time"
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, c.helpLine())
	}
	return c.render(g)
}

func (c *Console) render(g *gocui.Gui) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, err := g.View(statusView); err == nil {
		v.Clear()
		for _, line := range statusLines(c.sim, c.running) {
			fmt.Fprintln(v, line)
		}
	}
	v, err := g.View(fieldView)
	if err != nil {
		return err
	}
	v.Clear()
	maxW, maxH := v.Size()
	fmt.Fprint(v, fieldText(c.sim.Cells(), c.sim.Size(), maxW, maxH))
	return nil
}

func (c *Console) helpLine() string {
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for i, k := range c.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) refresh() {
	c.g.Update(c.render)
}

func (c *Console) cmdQuit() error {
	return gocui.ErrQuit
}

func (c *Console) cmdStep() error {
	c.mu.Lock()
	c.sim.Step()
	c.mu.Unlock()
	return c.render(c.g)
}

func (c *Console) cmdRun() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}
	c.running = true
	c.stop = make(chan struct{})
	go c.loop(c.stop)
	return nil
}

func (c *Console) cmdStop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil
	}
	c.running = false
	close(c.stop)
	return nil
}

func (c *Console) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			c.sim.Step()
			c.mu.Unlock()
			c.refresh()
		}
	}
}
