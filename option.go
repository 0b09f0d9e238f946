package crossbar

import (
	"github.com/viant/afs/storage"
	"github.com/viant/crossbar/service/topology"
	"github.com/viant/crossbar/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the service at construction time.
type Option func(s *Service)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithTopologyURL sets the hardware descriptor location.
func WithTopologyURL(URL string) Option {
	return func(s *Service) { s.config.TopologyURL = URL }
}

// WithDescriptor supplies an already loaded hardware descriptor,
// bypassing the topology loader.
func WithDescriptor(descriptor *topology.Descriptor) Option {
	return func(s *Service) { s.descriptor = descriptor }
}

// WithTopologyService sets the descriptor loader.
func WithTopologyService(service *topology.Service) Option {
	return func(s *Service) { s.topologyService = service }
}

// WithTopologyBaseURL sets the base URL relative descriptor locations
// resolve against.
func WithTopologyBaseURL(URL string) Option {
	return func(s *Service) { s.topologyBaseURL = URL }
}

// WithTopologyFsOptions sets the file system options passed to the
// descriptor loader.
func WithTopologyFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.topologyFsOptions = options }
}

// WithMaxCycle overrides the schedule horizon.
func WithMaxCycle(maxCycle int) Option {
	return func(s *Service) { s.config.MaxCycle = maxCycle }
}

// WithResources overrides the descriptor's declared resource kinds.
func WithResources(kinds ...string) Option {
	return func(s *Service) { s.config.Resources = kinds }
}

// WithTracing configures OpenTelemetry tracing for the service. If
// outputFile is empty the stdout exporter is used; otherwise traces are
// written to the supplied file path. Safe to call multiple times - the
// first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, for example OTLP, Jaeger or Zipkin. Safe to call
// multiple times - the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
