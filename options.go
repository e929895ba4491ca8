package bft

import (
	"fmt"
	"log/slog"
)

// DecodeOption configures a Decoder.
type DecodeOption func(*Decoder) error

// MaxLineSize returns a DecodeOption that sets the longest line, in bytes,
// the decoder accepts, not counting the final '\n'. Longer lines make
// Decode fail with ErrLineTooLong. By default lines are unbounded.
//
// The size n must be a positive integer.
func MaxLineSize(n int) DecodeOption {
	return func(d *Decoder) error {
		if n <= 0 {
			return fmt.Errorf("bft: max line size must be a positive integer")
		}
		d.maxLineSize = n
		return nil
	}
}

// WithLogger returns a DecodeOption that traces the decoder's state
// transitions at debug level.
func WithLogger(l *slog.Logger) DecodeOption {
	return func(d *Decoder) error {
		if l == nil {
			return fmt.Errorf("bft: nil logger")
		}
		d.log = l
		return nil
	}
}

// PrintOption configures Tree.Print.
type PrintOption func(*printer) error

// IndentWidth returns a PrintOption that sets the number of columns each
// level of the dump is indented by. The default is 4.
func IndentWidth(n int) PrintOption {
	return func(p *printer) error {
		if n <= 0 {
			return fmt.Errorf("bft: indent width must be a positive integer")
		}
		p.width = n
		return nil
	}
}

// WithColors returns a PrintOption that colors values and branch markers.
func WithColors(c *Colors) PrintOption {
	return func(p *printer) error {
		p.colors = c
		return nil
	}
}

// AutoColor returns a PrintOption that enables the default Colors when the
// output is a terminal.
func AutoColor() PrintOption {
	return func(p *printer) error {
		if isTerminal(p.w) {
			p.colors = NewColors()
		}
		return nil
	}
}
