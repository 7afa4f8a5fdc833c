package mock

import "github.com/fwojciec/lawcopy"

var _ lawcopy.Converter = (*Converter)(nil)

// Converter is a mock implementation of lawcopy.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
