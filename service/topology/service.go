package topology

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service loads topology descriptors from any afs-addressable storage
// (file, embed, mem, s3, ...).
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a descriptor loader rooted at baseURL.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Load reads, decodes and validates the descriptor at the URL. A URL
// without an extension gets ".yaml" appended; a relative URL is resolved
// against the service base URL.
func (s *Service) Load(ctx context.Context, URL string) (*Descriptor, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	if s.baseURL != "" && !strings.Contains(URL, "://") {
		URL = url.Join(s.baseURL, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load topology from %s: %w", URL, err)
	}
	return s.DecodeYAML(data)
}

// DecodeYAML decodes and validates a descriptor document.
func (s *Service) DecodeYAML(encoded []byte) (*Descriptor, error) {
	descriptor := &Descriptor{}
	if err := yaml.Unmarshal(encoded, descriptor); err != nil {
		return nil, fmt.Errorf("failed to parse topology: %w", err)
	}
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}
	return descriptor, nil
}
