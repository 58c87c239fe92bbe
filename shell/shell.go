// Package shell runs the event loop that connects the window, the input
// translator, and the embedded engine.
//
// The loop is single-threaded and cooperative: it blocks until at least
// one screen event arrives, drains everything pending, forwards the
// translated commands, lets the engine answer, and finishes the iteration
// with exactly one render pass. The only other goroutine is the poll pump,
// which owns no state and only feeds the event channel.
package shell

import (
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/scrap/audio"
	"github.com/lixenwraith/scrap/engine"
	"github.com/lixenwraith/scrap/input"
	"github.com/lixenwraith/scrap/window"
)

// Options configures a Shell.
type Options struct {
	// Homepage is navigated to on startup. Empty starts on a blank view.
	Homepage string

	// ScrollStep is the line delta per wheel event. Zero means 1.
	ScrollStep int

	// Bell rings on engine bell events. Nil disables audio.
	Bell *audio.Bell

	// Logger receives shell diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Shell owns the window, the engine handle, and the loop driving both.
type Shell struct {
	win        *window.Window
	eng        engine.Engine
	translator *input.Translator
	pending    *engine.Queue
	bell       *audio.Bell
	log        *slog.Logger

	view uuid.UUID
	quit bool
	err  error // first fatal error, returned by Run
}

// New wires a shell around an open window and an unattached engine.
func New(win *window.Window, eng engine.Engine, opts Options) *Shell {
	translator := input.NewTranslator()
	translator.ScrollStep = opts.ScrollStep

	log := opts.Logger
	if log == nil {
		log = newNopLogger()
	}

	s := &Shell{
		win:        win,
		eng:        eng,
		translator: translator,
		pending:    engine.NewQueue(),
		bell:       opts.Bell,
		log:        log,
		view:       uuid.New(),
	}
	if opts.Homepage != "" {
		s.pending.Push(engine.Navigate(s.view, opts.Homepage))
	}
	return s
}

// View returns the identifier of the shell's single view.
func (s *Shell) View() uuid.UUID {
	return s.view
}

// Run attaches the engine and blocks in the event loop until a close
// request or a fatal error. On return the engine is closed and the window
// restored, in that order.
func (s *Shell) Run() error {
	defer s.win.Close()
	defer s.closeEngine()

	if err := s.eng.Attach(s.win.Surface()); err != nil {
		return &engine.EngineError{Op: "attach", Err: err}
	}
	s.log.Info("engine attached", "view", s.view)

	// Initial flush and paint so the homepage shows before any input.
	if err := s.iterate(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	go s.poll(events)

	for !s.quit {
		ev, ok := <-events
		if !ok {
			// Poll ended without a close request: the platform died.
			if s.err == nil {
				s.err = &window.PlatformError{Op: "poll", Err: errors.New("event stream closed")}
			}
			break
		}
		s.dispatch(ev)

		// Drain everything already pending before rendering.
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					break drain
				}
				s.dispatch(ev)
			default:
				break drain
			}
		}

		// Flush before honoring quit so commands already translated in
		// this batch still reach the engine in order.
		if err := s.iterate(); err != nil {
			return err
		}
	}
	return s.err
}

// poll pumps blocking screen polls into the loop's channel. PollEvent
// returns nil once the screen is finalized, which ends the pump.
func (s *Shell) poll(out chan<- tcell.Event) {
	for {
		ev := s.win.Screen().PollEvent()
		if ev == nil {
			close(out)
			return
		}
		out <- ev
	}
}

// dispatch handles one screen event: shell chrome first (quit keys,
// resize, platform errors), then translation into engine commands.
func (s *Shell) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventError:
		s.err = &window.PlatformError{Op: "poll", Err: errors.New(ev.Error())}
		s.quit = true
		return

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
			s.quit = true
			return
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		s.win.Resize(w, h)
	}

	for _, cmd := range s.translator.Translate(ev) {
		s.pending.Push(cmd)
	}
}

// iterate flushes the command/event exchange and runs one render pass.
func (s *Shell) iterate() error {
	s.flush()
	if s.quit {
		return nil
	}
	if err := s.eng.Render(); err != nil {
		return &engine.EngineError{Op: "render", Err: err}
	}
	s.win.Flush()
	return nil
}

// flush forwards pending commands and handles engine replies until both
// sides are quiescent. Handling an engine event can enqueue commands and
// handling commands can produce events, so this loops like the original
// embedder's flush: stop only when a pass moved nothing.
func (s *Shell) flush() {
	for {
		cmds := s.pending.Consume()
		for _, cmd := range cmds {
			if err := s.eng.Handle(cmd); err != nil {
				// Engine degradation is not fatal; log and continue.
				s.log.Warn("engine rejected command", "type", cmd.Type, "err", err)
			}
		}
		replied := s.handleEngineEvents()
		if len(cmds) == 0 && !replied {
			return
		}
	}
}

// handleEngineEvents drains the engine's outbox and reports whether there
// was anything in it.
func (s *Shell) handleEngineEvents() bool {
	events := s.eng.Events()
	if len(events) == 0 {
		return false
	}
	for _, ev := range events {
		switch ev.Type {
		case engine.EventNavigationRequest:
			// Shell policy: every navigation is granted.
			s.log.Info("navigation granted", "view", ev.View, "url", ev.URL)
			s.pending.Push(engine.Navigate(ev.View, ev.URL))

		case engine.EventTitleChanged:
			s.win.Screen().SetTitle(ev.Title)

		case engine.EventBell:
			if s.bell != nil {
				s.bell.Ring()
			}

		case engine.EventCloseRequest:
			s.quit = true
		}
	}
	return true
}

func (s *Shell) closeEngine() {
	if err := s.eng.Close(); err != nil {
		s.log.Warn("engine close", "err", err)
	}
}
