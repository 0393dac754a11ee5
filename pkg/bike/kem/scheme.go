package kem

import (
	"github.com/openbike/bike-go/pkg/bike/logging"
	"github.com/openbike/bike-go/pkg/bike/params"
)

// Scheme is a configured BIKE instance for one parameter level.
type Scheme struct {
	level   params.Level
	entropy Entropy
	logger  logging.Logger
	profile params.ThresholdProfile
}

// Option configures a Scheme at construction time.
type Option func(*Scheme)

// WithEntropy overrides the default crypto/rand-backed Entropy source.
// Only tests and other deterministic, seed-reproducible code should
// need this.
func WithEntropy(e Entropy) Option {
	return func(s *Scheme) { s.entropy = e }
}

// WithLogger attaches a logging.Logger. The default is a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Scheme) { s.logger = l }
}

// WithThresholdProfile selects the decoder's threshold oracle. The
// default is params.Affine, the reference profile.
func WithThresholdProfile(p params.ThresholdProfile) Option {
	return func(s *Scheme) { s.profile = p }
}

// New builds a Scheme for the given parameter level.
func New(level params.Level, opts ...Option) *Scheme {
	s := &Scheme{
		level:   level,
		entropy: cryptoRandEntropy{},
		logger:  logging.Noop(),
		profile: params.Affine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
