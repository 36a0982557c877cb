package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/sevak/internal/core/config"
	"github.com/hay-kot/sevak/internal/core/scale"
)

// terminalMetricsFunc reads the terminal size.
// Package-level variable to allow test overrides.
var terminalMetricsFunc = scale.TerminalMetrics

// DisplayCheck reports the configured display, guideline, and factor.
type DisplayCheck struct {
	display config.DisplayConfig
}

// NewDisplayCheck creates a new display check.
func NewDisplayCheck(display config.DisplayConfig) *DisplayCheck {
	return &DisplayCheck{display: display}
}

func (c *DisplayCheck) Name() string {
	return "Display"
}

func (c *DisplayCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}
	d := c.display

	s, err := d.Scaler()
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "display",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	m := s.Metrics()
	result.Items = append(result.Items, CheckItem{
		Label:  "display",
		Status: StatusPass,
		Detail: fmt.Sprintf("%gx%g (scale %.2f, vertical %.2f)", m.Width, m.Height, s.Scale(1), s.VerticalScale(1)),
	})

	// Metrics are orientation independent, so the guideline width is
	// always compared against the short side.
	guideline := CheckItem{
		Label:  "guideline",
		Status: StatusPass,
		Detail: fmt.Sprintf("%gx%g", d.GuidelineWidth, d.GuidelineHeight),
	}
	if d.GuidelineWidth > d.GuidelineHeight {
		guideline.Status = StatusWarn
		guideline.Detail += " (width should be the short side)"
	}
	result.Items = append(result.Items, guideline)

	factor := d.FactorOrDefault()
	item := CheckItem{
		Label:  "factor",
		Status: StatusPass,
		Detail: fmt.Sprintf("%g", factor),
	}
	if factor < 0 || factor > 1 {
		item.Status = StatusWarn
		item.Detail += " (outside 0..1, moderated sizes overshoot)"
	}
	result.Items = append(result.Items, item)

	return result
}

// TerminalCheck reports the size of the terminal on fd.
type TerminalCheck struct {
	fd int
}

// NewTerminalCheck creates a terminal check for fd.
func NewTerminalCheck(fd int) *TerminalCheck {
	return &TerminalCheck{fd: fd}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	m, err := terminalMetricsFunc(c.fd)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "size",
			Status: StatusWarn,
			Detail: "not a terminal ('sevak scale --terminal' is unavailable)",
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "size",
		Status: StatusPass,
		Detail: fmt.Sprintf("%gx%g cells", m.Width, m.Height),
	})
	return result
}
