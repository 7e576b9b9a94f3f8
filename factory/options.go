package factory

import (
	"io"
	"os"
)

type option struct {
	Writer io.Writer
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	return o
}

type Option func(*option)

// Writer redirects the characters' ability output away from os.Stdout.
func Writer(w io.Writer) Option {
	return func(o *option) {
		o.Writer = w
	}
}
