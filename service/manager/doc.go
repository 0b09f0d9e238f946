// Package manager owns the scheduling pass state: the configured
// resource trackers and the placement timeline. It is the single point
// through which an external scheduler checks hardware availability,
// reserves it and commits placement changes; a deadlock resolver over
// the same timeline handles blocked shuttles. One manager serves one
// pass in one direction and is never shared across passes.
package manager
