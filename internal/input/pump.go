package input

// WindowSink receives the window-state events the pump does not handle itself.
// Commit runs once per frame after all events were applied.
type WindowSink interface {
	Apply(ev RawEvent)
	Commit()
}

// Pump moves raw native events from the intake into the keyboard, the mouse
// and the window state, once per frame on the game thread.
type Pump struct {
	intake     *Intake
	keyboard   *Keyboard
	reconciler *Reconciler
	mouse      *Mouse
	window     WindowSink
	tap        func(RawEvent)
}

// NewPump wires a keyboard, a mouse and an optional window sink to a fresh
// intake.
func NewPump(kb *Keyboard, mouse *Mouse, window WindowSink) *Pump {
	return &Pump{
		intake:     NewIntake(),
		keyboard:   kb,
		reconciler: NewReconciler(kb),
		mouse:      mouse,
		window:     window,
	}
}

// Intake returns the queue native callbacks push into
func (p *Pump) Intake() *Intake {
	return p.intake
}

func (p *Pump) Keyboard() *Keyboard {
	return p.keyboard
}

func (p *Pump) Mouse() *Mouse {
	return p.mouse
}

// SetTap installs a function that sees every raw event before it is
// dispatched. Pass nil to remove it.
func (p *Pump) SetTap(tap func(RawEvent)) {
	p.tap = tap
}

// Dispatch routes a single raw event
func (p *Pump) Dispatch(ev RawEvent) {
	if p.tap != nil {
		p.tap(ev)
	}

	switch ev.Kind {
	case EventKey:
		p.reconciler.Key(ev.Key, ev.Scancode, ev.Action, ev.Mods, ev.Nanos)
	case EventChar:
		p.reconciler.Char(ev.Char, ev.Nanos)
	case EventCursorPos:
		if p.mouse != nil {
			p.mouse.AddMove(ev.X, ev.Y, ev.Nanos)
		}
	case EventMouseButton:
		if p.mouse != nil {
			p.mouse.AddButton(int(ev.Key), ev.Action != ActionRelease, ev.Nanos)
		}
	case EventScroll:
		if p.mouse != nil {
			p.mouse.AddScroll(ev.X, ev.Y, ev.Nanos)
		}
	default:
		if p.window != nil {
			p.window.Apply(ev)
		}
	}
}

// EndFrame resolves anything left pending by the events of this frame.
func (p *Pump) EndFrame() {
	p.reconciler.Flush()
	if p.mouse != nil {
		p.mouse.Poll()
		p.mouse.endFrame()
	}
	if p.window != nil {
		p.window.Commit()
	}
}

// Process drains the intake, dispatches every event and ends the frame. It
// returns the number of raw events handled.
func (p *Pump) Process() int {
	events := p.intake.Drain()
	for _, ev := range events {
		p.Dispatch(ev)
	}
	p.EndFrame()
	return len(events)
}
