package numinput

import (
	"fmt"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/mask"
	"github.com/muurk/numfield/internal/numfmt"
)

// Callbacks receive value notifications. Either may be nil.
type Callbacks struct {
	OnInput  func(Value)
	OnChange func(Value)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithScheduler sets how the deferred focus step is run. The step must run
// after the host has settled the field's selection following a focus event.
// The default runs it immediately.
func WithScheduler(schedule func(func())) Option {
	return func(c *Controller) {
		c.schedule = schedule
	}
}

// WithLogger sets the logger used for conformance and commit decisions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		c.log = logger
	}
}

// settings is everything derived from Options. It is replaced as a whole so
// a failed SetOptions leaves the previous configuration in effect.
type settings struct {
	opts       Options
	format     *numfmt.Format
	mask       mask.Strategy
	valueRange Range
	hide       DistractionFree
	inputMode  InputMode
}

func newSettings(opts Options) (*settings, error) {
	f, err := numfmt.New(numfmt.Options{
		Locale:    opts.Locale,
		Currency:  opts.Currency,
		Precision: opts.Precision,
	})
	if err != nil {
		return nil, NewFormatError("invalid number format", err)
	}

	r, err := NewRange(opts.ValueRange, f.SafeCeiling())
	if err != nil {
		return nil, err
	}

	s := &settings{
		opts:       opts,
		format:     f,
		mask:       mask.For(f, opts.AutoDecimalDigits),
		valueRange: r,
		hide:       opts.DistractionFree,
		inputMode:  InputModeDecimal,
	}
	if opts.AutoDecimalDigits {
		s.hide.HideNegligibleDecimalDigits = false
		s.inputMode = InputModeNumeric
	}
	return s, nil
}

// Controller keeps a Field's text and a decimal value in sync.
type Controller struct {
	field     Field
	callbacks Callbacks
	schedule  func(func())
	log       *zap.Logger

	*settings

	state   FocusState
	pending decimalMarker

	number    decimal.Decimal
	valid     bool
	formatted string
}

// New creates a controller for field. The field's current text is parsed
// and committed as the initial value.
func New(field Field, opts Options, callbacks Callbacks, options ...Option) (*Controller, error) {
	c := &Controller{
		field:     field,
		callbacks: callbacks,
		schedule:  func(fn func()) { fn() },
		log:       zap.NewNop(),
	}
	for _, o := range options {
		o(c)
	}

	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	c.apply(s)

	// Existing text is already in display units, so ValueAsInteger does not
	// rescale it the way SetValue does.
	text := field.Text()
	if d, ok := c.format.Parse(text); ok {
		c.commit(d, true, false)
	} else if text != "" {
		c.conform("", false)
	}

	return c, nil
}

func (c *Controller) apply(s *settings) {
	c.settings = s
	c.field.SetInputMode(s.inputMode)
	c.log.Debug("Options applied",
		zap.String("locale", s.format.Locale),
		zap.String("currency", s.format.Currency),
		zap.Int("max_fraction_digits", s.format.MaximumFractionDigits),
		zap.Bool("auto_decimal", s.opts.AutoDecimalDigits),
		zap.Stringer("min", s.valueRange.Min),
		zap.Stringer("max", s.valueRange.Max),
	)
}

// Format returns the formatter of the current configuration.
func (c *Controller) Format() *numfmt.Format {
	return c.format
}

// Options returns the current configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// Range returns the effective value range.
func (c *Controller) Range() Range {
	return c.valueRange
}

// State returns the focus state.
func (c *Controller) State() FocusState {
	return c.state
}

// Input handles a single edit of the field text, typically one keystroke.
func (c *Controller) Input() {
	c.edit(false)
}

// Paste handles a multi-character insertion. The text is fully re-rendered
// and the caret keeps its distance from the end of the text.
func (c *Controller) Paste() {
	c.edit(true)
}

func (c *Controller) edit(paste bool) {
	raw := c.field.Text()
	caret, _ := c.field.Selection()

	c.conform(raw, false)

	if c.state == Focused {
		pos := c.caretAfterEdit(raw, caret, paste)
		c.field.SetSelection(pos, pos)
	}
}

// Focus moves the controller to Focused. Re-rendering with the
// distraction-free flags and the selection mapping happen in a deferred step
// run through the scheduler.
func (c *Controller) Focus() {
	c.state = Focused
	c.schedule(c.settleFocus)
}

func (c *Controller) settleFocus() {
	// A blur may have arrived before the deferred step ran.
	if c.state != Focused {
		return
	}

	before := c.field.Text()
	start, end := c.field.Selection()

	if c.hide.Any() && before != "" {
		c.conform(before, c.hide.HideNegligibleDecimalDigits)
	}

	if start != end {
		c.field.SetSelection(0, runeLen(c.field.Text()))
		return
	}
	pos := c.caretAfterFocus(before, start)
	c.field.SetSelection(pos, pos)
}

// Blur moves the controller to Unfocused and commits the current value.
func (c *Controller) Blur() {
	c.state = Unfocused
	c.pending.clear()

	if c.valid {
		c.commit(c.number, true, false)
		return
	}
	// Incomplete input such as a lone minus sign has no value to commit.
	if c.formatted != "" {
		c.conform("", false)
	}
}

// KeyPress records a decimal symbol keystroke so the next Input can
// normalize whichever variant was typed. Other keys are ignored.
func (c *Controller) KeyPress(key string) {
	for _, s := range numfmt.DecimalSymbols {
		if key == s {
			start, _ := c.field.Selection()
			c.pending.record(start)
			return
		}
	}
}

// Change handles the host's own change event by re-emitting the current
// value.
func (c *Controller) Change() {
	c.notifyChange()
}

// SetOptions replaces the configuration and re-renders the current value.
// On error the previous configuration stays in effect.
func (c *Controller) SetOptions(opts Options) error {
	s, err := newSettings(opts)
	if err != nil {
		return fmt.Errorf("set options: %w", err)
	}
	c.apply(s)
	c.commit(c.number, c.valid, true)
	return nil
}

func (c *Controller) notifyInput() {
	if c.callbacks.OnInput != nil {
		c.callbacks.OnInput(c.Value())
	}
}

func (c *Controller) notifyChange() {
	if c.callbacks.OnChange != nil {
		c.callbacks.OnChange(c.Value())
	}
}
