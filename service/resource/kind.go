package resource

import (
	"errors"
	"fmt"
)

// Kind identifies one hardware exclusivity capability.
type Kind string

const (
	// KindSites tracks per-cell occupancy windows.
	KindSites Kind = "sites"
	// KindQubits tracks per-qubit operation windows.
	KindQubits Kind = "qubits"
	// KindBarriers tracks the inter-cell boundary gates.
	KindBarriers Kind = "barriers"
	// KindQubitLines tracks the shared diagonal control lines.
	KindQubitLines Kind = "qubit_lines"
	// KindWave tracks the global drive-signal classes.
	KindWave Kind = "wave"
)

// ErrUnknownKind reports a resource kind name outside the closed set.
var ErrUnknownKind = errors.New("resource: unknown kind")

// ParseKind converts a descriptor value into a Kind, rejecting names
// outside the closed set.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindSites, KindQubits, KindBarriers, KindQubitLines, KindWave:
		return Kind(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every supported kind in construction order.
func Kinds() []Kind {
	return []Kind{KindSites, KindQubits, KindBarriers, KindQubitLines, KindWave}
}

var constructors = map[Kind]func(Config) Resource{
	KindSites:      newSiteResource,
	KindQubits:     newQubitResource,
	KindBarriers:   newBarrierResource,
	KindQubitLines: newLineResource,
	KindWave:       newWaveResource,
}

// New builds the tracker for a kind. The kind must come from ParseKind;
// an unknown kind here is a configuration error.
func New(kind Kind, config Config) (Resource, error) {
	constructor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return constructor(config), nil
}
