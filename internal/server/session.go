package server

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/logging"
	"github.com/muurk/numfield/internal/numinput"
	"github.com/muurk/numfield/internal/protocol"
)

// session mirrors one remote widget. It owns the controller, so all of its
// methods run on the connection's read goroutine.
type session struct {
	id    string
	field *numinput.MemoryField
	ctrl  *numinput.Controller
	log   *zap.Logger

	// deferred holds focus steps queued by the controller's scheduler.
	deferred []func()
	// notifications are collected during a controller call and sent after
	// the render they belong to.
	notifications []*protocol.Message
}

func newSession(id string, opts numinput.Options) (*session, error) {
	s := &session{
		id:    id,
		field: numinput.NewMemoryField(""),
		log:   logging.Named("session", zap.String("session", id)),
	}

	ctrl, err := numinput.New(s.field, opts, numinput.Callbacks{
		OnInput:  func(v numinput.Value) { s.notify(protocol.NotifyInput, v) },
		OnChange: func(v numinput.Value) { s.notify(protocol.NotifyChange, v) },
	},
		numinput.WithScheduler(func(fn func()) { s.deferred = append(s.deferred, fn) }),
		numinput.WithLogger(s.log.Named("numinput")),
	)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

func (s *session) notify(event string, v numinput.Value) {
	s.notifications = append(s.notifications, protocol.NewNotify(event, v))
}

// greeting is sent once after the upgrade.
func (s *session) greeting() []*protocol.Message {
	return []*protocol.Message{protocol.NewReady(s.ctrl.Format()), s.render()}
}

func (s *session) render() *protocol.Message {
	start, end := s.field.Selection()
	return protocol.NewRender(s.field.Text(), start, end, s.field.InputMode())
}

// flush returns a render followed by the notifications it caused.
func (s *session) flush() []*protocol.Message {
	out := append([]*protocol.Message{s.render()}, s.notifications...)
	s.notifications = nil
	return out
}

// handle applies one client event and returns the messages to send, in
// order. Deferred focus steps run after the render of the event that queued
// them.
func (s *session) handle(ev *protocol.Event) []*protocol.Message {
	if ev.Selection != nil {
		s.field.SetSelection(ev.Selection.Start, ev.Selection.End)
	}

	var out []*protocol.Message
	switch ev.Type {
	case protocol.EventConfigure:
		if err := s.ctrl.SetOptions(ev.Options.ControllerOptions()); err != nil {
			s.log.Warn("Configure rejected", zap.Error(err))
			return []*protocol.Message{protocol.NewError(err)}
		}
		out = append(out, protocol.NewReady(s.ctrl.Format()))

	case protocol.EventInput, protocol.EventPaste:
		caret := utf8.RuneCountInString(*ev.Text)
		if ev.Selection != nil {
			caret = ev.Selection.End
		}
		s.field.Edit(*ev.Text, caret)
		logging.LogFieldEvent(s.id, string(ev.Type), *ev.Text, caret, caret)
		if ev.Type == protocol.EventPaste {
			s.ctrl.Paste()
		} else {
			s.ctrl.Input()
		}

	case protocol.EventFocus:
		s.ctrl.Focus()

	case protocol.EventBlur:
		s.ctrl.Blur()

	case protocol.EventKeyPress:
		// Nothing to render until the input event that follows.
		s.ctrl.KeyPress(ev.Key)
		return nil

	case protocol.EventChange:
		s.ctrl.Change()

	case protocol.EventSetValue:
		if ev.Value == nil {
			s.ctrl.ClearValue()
		} else {
			s.ctrl.SetValue(ev.Value.Decimal)
		}

	default:
		return []*protocol.Message{protocol.NewError(fmt.Errorf("unhandled event %q", ev.Type))}
	}

	out = append(out, s.flush()...)
	for len(s.deferred) > 0 {
		fn := s.deferred[0]
		s.deferred = s.deferred[1:]
		fn()
		out = append(out, s.flush()...)
	}
	return out
}
