package lazycursor

import "context"

type Option interface {
	configure(c *config)
}

type optionFunc func(c *config)

func (fn optionFunc) configure(c *config) { fn(c) }

// WithContext sets the context handed to the Transitions and used for logging.
func WithContext(ctx context.Context) Option {
	return optionFunc(func(c *config) { c.Context = ctx })
}

// OnRelease registers a hook that runs once, right after the Transitions released their resources.
func OnRelease(fn func() error) Option {
	return optionFunc(func(c *config) {
		c.OnRelease = append(c.OnRelease, fn)
	})
}

type config struct {
	Context   context.Context
	OnRelease []func() error
}

func toConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt.configure(&c)
	}
	if c.Context == nil {
		c.Context = context.Background()
	}
	return c
}
