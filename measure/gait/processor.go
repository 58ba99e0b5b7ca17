package gait

// Processor computes gait metrics against a fixed configuration.
//
// The configuration is validated once at construction and read-only
// afterwards, so a single Processor may analyze many recordings, including
// concurrently.
type Processor struct {
	cfg Config
}

// New builds a Processor from the defaults and zero or more options.
func New(opts ...Option) (*Processor, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return NewWithConfig(cfg)
}

// NewWithConfig builds a Processor from a fully specified configuration.
func NewWithConfig(cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Processor{cfg: cfg}, nil
}

// Config returns a copy of the processor configuration.
func (p *Processor) Config() Config {
	return p.cfg
}
