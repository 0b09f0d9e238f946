package crossbar

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/crossbar/schedule"
	"github.com/viant/crossbar/service/manager"
	"github.com/viant/crossbar/service/topology"
)

// Service is the high-level facade over the scheduler core. It loads
// the hardware descriptor once and hands out one resource manager per
// scheduling pass; managers are never shared across passes.
type Service struct {
	config            *Config
	descriptor        *topology.Descriptor
	topologyService   *topology.Service
	topologyBaseURL   string
	topologyFsOptions []storage.Option
}

// New creates the service with the supplied options.
func New(options ...Option) *Service {
	ret := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	ret.ensureBaseSetup()
	return ret
}

func (s *Service) ensureBaseSetup() {
	if s.topologyService == nil {
		s.topologyService = topology.New(afs.New(), s.topologyBaseURL, s.topologyFsOptions...)
	}
}

// Config returns the active configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Descriptor returns the hardware descriptor, loading it from the
// configured URL on first use.
func (s *Service) Descriptor(ctx context.Context) (*topology.Descriptor, error) {
	if s.descriptor != nil {
		return s.descriptor, nil
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if s.config.TopologyURL == "" {
		return nil, fmt.Errorf("%w: no topology configured", topology.ErrInvalidDescriptor)
	}
	descriptor, err := s.topologyService.Load(ctx, s.config.TopologyURL)
	if err != nil {
		return nil, err
	}
	if len(s.config.Resources) > 0 {
		descriptor.Resources = s.config.Resources
	}
	s.descriptor = descriptor
	return descriptor, nil
}

// Pass constructs a fresh resource manager for one scheduling pass in
// the given direction. Committed state never leaks between passes.
func (s *Service) Pass(ctx context.Context, direction schedule.Direction) (*manager.Service, error) {
	descriptor, err := s.Descriptor(ctx)
	if err != nil {
		return nil, err
	}
	return manager.New(descriptor, direction, s.config.MaxCycle)
}
