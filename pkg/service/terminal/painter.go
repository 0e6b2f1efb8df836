package terminal

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/secmon-lab/indicator/pkg/domain/model/indicator"
	"github.com/secmon-lab/indicator/pkg/domain/types"
)

const dot = "●"

// Painter renders resolved indicators as colored dots for terminal output
type Painter struct {
	colored bool
}

// Option configures a Painter
type Option func(*Painter)

// WithColor forces colored output on or off. By default the terminal's
// capability as detected by fatih/color decides.
func WithColor(enabled bool) Option {
	return func(p *Painter) {
		p.colored = enabled
	}
}

// New creates a Painter
func New(opts ...Option) *Painter {
	p := &Painter{colored: !color.NoColor}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dot returns the indicator dot painted with the color token. Unknown tokens
// and absent colors yield an unpainted dot.
func (p *Painter) Dot(token string, ok bool) string {
	if !ok {
		return dot
	}
	r, g, b, valid := types.Color(token).RGB()
	if !valid {
		return dot
	}

	c := color.RGB(r, g, b)
	if p.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(dot)
}

// Paint renders a resolved display. Hidden displays render as an empty
// string and the label is dropped when labels are hidden.
func (p *Painter) Paint(d indicator.Display, labelsHidden bool) string {
	if d.Hidden {
		return ""
	}
	painted := p.Dot(d.Color, d.HasColor)
	if labelsHidden {
		return painted
	}
	return painted + " " + fmt.Sprint(d.Value)
}
