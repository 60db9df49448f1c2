// Package turing is a replay-model scene that runs a two-rule Turing machine
// incrementing a binary number on a tape. The head writes, steps and changes
// state one move at a time while the rule it is applying flashes in the table
// below the tape. Every write plays a blip halfway through.
package turing

import (
	"math"

	"panim/studio/ease"
	"panim/studio/plug"
	"panim/studio/sound"
	"panim/studio/timeline"
	"panim/studio/tween"
)

const Name = "turing"

const (
	tapeSize = 50
	startAt  = 5

	introTime = 1.0
	moveTime  = 0.25
	writeTime = 0.25
	pause     = 0.5
	reveal    = 0.5
	delay     = 0.8
	hold      = 1.5
	bumpDecay = 0.8

	tapeLift = -280.0
)

const (
	halt  = "Halt"
	blank = " "
	right = "->"
	left  = "<-"
)

// Rule table columns.
const (
	colState = iota
	colRead
	colWrite
	colStep
	colNext
	columns
)

type Rule struct {
	Symbols [columns]string
	// Bump flashes a field while the rule is applied, decaying from 1 to 0.
	Bump [columns]float64
}

// Cell shows symbol A fading into B as T goes from 0 to 1.
type Cell struct {
	A, B string
	T    float64
}

type Head struct {
	Index  int
	Offset float64
	State  Cell
	// StateT reveals the state label under the head.
	StateT float64
}

type Table struct {
	Rules [2]Rule
	// LinesT, SymbolsT and HeadT reveal the grid, its symbols and the
	// highlight box. HeadOffsetT is the row the highlight sits on.
	LinesT, SymbolsT, HeadT, HeadOffsetT float64
}

type Scene struct {
	// T is the intro progress: it zooms in and slides the head onto the tape.
	T           float64
	Head        Head
	Tape        [tapeSize]Cell
	Table       Table
	TapeYOffset float64
}

// initial is the scene every pass of the script starts from.
var initial = func() Scene {
	var s Scene
	s.Table.Rules = [2]Rule{
		{Symbols: [columns]string{"Inc", "0", "1", right, halt}},
		{Symbols: [columns]string{"Inc", "1", "0", right, "Inc"}},
	}
	s.Table.HeadOffsetT = 1
	for i := range s.Tape {
		switch {
		case i < startAt:
			s.Tape[i].A = blank
		case i < startAt+3:
			s.Tape[i].A = "1"
		default:
			s.Tape[i].A = "0"
		}
	}
	s.Head.Index = startAt
	s.Head.State.A = "Inc"
	return s
}()

// Writes is how many write blips one pass of the scene plays: every machine
// step writes the tape and then the state.
const Writes = 2 * steps

// steps is how many moves the machine makes from the initial tape to Halt.
const steps = 4

// Duration is the length of one full pass of the scene in seconds.
const Duration = introTime + pause + reveal + pause + reveal +
	steps*(3*delay+2*writeTime+moveTime) + delay +
	hold + introTime + pause

type Plug struct {
	clock    timeline.Clock
	scene    Scene
	finished bool
}

var _ plug.Plug = (*Plug)(nil)

func New() *Plug {
	p := &Plug{}
	p.Reset()
	return p
}

func (p *Plug) Name() string { return Name }

func (p *Plug) Reset() {
	p.clock.Restart()
	p.scene = initial
	p.finished = false
}

func (p *Plug) Finished() bool { return p.finished }

// Scene returns the current scene state.
func (p *Plug) Scene() Scene { return p.scene }

func (p *Plug) Update(env plug.Env) {
	p.clock.Advance(env.DeltaTime)
	p.script(env)
	p.finished = p.clock.Finished()
	if env.Canvas != nil {
		p.draw(env.Canvas)
	}
}

func (p *Plug) script(env plug.Env) {
	c := &p.clock
	s := &p.scene
	*s = initial
	fn := ease.Smoothstep

	tween.Move(c, &s.T, 1, introTime, fn)
	c.WaitForEnd()
	c.Wait(pause)
	tween.Move(c, &s.TapeYOffset, tapeLift, reveal, fn)
	c.WaitForEnd()
	c.Wait(pause)

	for _, v := range []*float64{&s.Table.LinesT, &s.Table.SymbolsT, &s.Head.StateT, &s.Table.HeadT} {
		tween.Move(c, v, 1, reveal, fn)
	}
	c.WaitForEnd()

	p.run(c, env)

	c.Wait(hold)
	for _, v := range []*float64{
		&s.T, &s.TapeYOffset,
		&s.Table.LinesT, &s.Table.SymbolsT, &s.Table.HeadT, &s.Head.StateT,
	} {
		tween.Move(c, v, 0, introTime, fn)
	}
	c.WaitForEnd()
	c.Wait(pause)
	c.WaitForEnd()
}

// machine is the logical machine the animation follows. It is stepped on
// every pass regardless of the clock so the animated steps line up the same
// way on every frame.
type machine struct {
	tape  [tapeSize]string
	head  int
	state string
}

func (m *machine) rule(rules []Rule) int {
	if m.head < 0 || m.head >= tapeSize {
		return -1
	}
	for i, r := range rules {
		if r.Symbols[colState] == m.state && r.Symbols[colRead] == m.tape[m.head] {
			return i
		}
	}
	return -1
}

func direction(step string) int {
	switch step {
	case right:
		return 1
	case left:
		return -1
	default:
		return 0
	}
}

func (p *Plug) run(c *timeline.Clock, env plug.Env) {
	s := &p.scene
	rules := s.Table.Rules[:]

	m := machine{head: s.Head.Index, state: s.Head.State.A}
	for i, cell := range s.Tape {
		m.tape[i] = cell.A
	}

	row := m.rule(rules)
	for n := 0; row >= 0 && n < tapeSize; n++ {
		r := rules[row].Symbols

		c.Wait(delay)
		p.write(c, p.cell(m.head), r[colWrite], env)
		p.bump(c, row, colWrite)
		c.WaitForEnd()
		m.tape[m.head] = r[colWrite]

		c.Wait(delay)
		dir := direction(r[colStep])
		p.move(c, dir)
		p.bump(c, row, colStep)
		c.WaitForEnd()
		m.head += dir

		c.Wait(delay)
		m.state = r[colNext]
		next := m.rule(rules)
		if next >= 0 && next != row {
			tween.Move(c, &s.Table.HeadOffsetT, float64(next), writeTime, ease.Smoothstep)
		}
		p.write(c, &s.Head.State, r[colNext], env)
		p.bump(c, row, colNext)
		c.WaitForEnd()
		row = next
	}
	c.Wait(delay)
}

func (p *Plug) cell(i int) *Cell {
	if i < 0 || i >= len(p.scene.Tape) {
		return nil
	}
	return &p.scene.Tape[i]
}

// write fades cell over to sym and plays the write blip when the fade is
// halfway through.
func (p *Plug) write(c *timeline.Clock, cell *Cell, sym string, env plug.Env) {
	c.Trigger(writeTime, 0.5, func() { env.Play(sound.Write) })
	t := c.ClipTime(writeTime)
	if t <= 0 || cell == nil {
		return
	}
	cell.B = sym
	cell.T = ease.Smoothstep(t)
	if t >= 1 {
		cell.A = sym
		cell.T = 0
	}
}

func (p *Plug) move(c *timeline.Clock, dir int) {
	h := &p.scene.Head
	t := c.ClipTime(moveTime)
	switch {
	case t <= 0:
	case t >= 1:
		h.Offset = 0
		h.Index += dir
	default:
		h.Offset = tween.Lerp(0, float64(dir), ease.Smoothstep(t))
	}
}

// bump flashes a table field from the start of the current step. It does not
// reserve time on the clock.
func (p *Plug) bump(c *timeline.Clock, row, col int) {
	if c.CurrentTime < c.ClipStartTime {
		return
	}
	b := 1 - (c.CurrentTime-c.ClipStartTime)/bumpDecay
	p.scene.Table.Rules[row].Bump[col] = math.Max(0, b)
}
