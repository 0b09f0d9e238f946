package manager

import "github.com/viant/crossbar/service/resource"

// Option customises a manager at construction time.
type Option func(*Service)

// WithResources replaces the descriptor-driven tracker set, mainly for
// tests that want to exercise a single resource in isolation.
func WithResources(resources ...resource.Resource) Option {
	return func(s *Service) {
		s.resources = resources
	}
}
