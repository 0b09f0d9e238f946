package manager

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/crossbar/internal/idgen"
	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
	"github.com/viant/crossbar/schedule"
	"github.com/viant/crossbar/service/deadlock"
	"github.com/viant/crossbar/service/resource"
	"github.com/viant/crossbar/service/topology"
	"github.com/viant/crossbar/tracing"
)

// ErrInvalidHorizon is returned when neither the caller nor the
// descriptor provides a positive schedule horizon.
var ErrInvalidHorizon = fmt.Errorf("manager: schedule horizon must be positive")

// Commit records one successful reservation.
type Commit struct {
	ID         string
	Name       string
	StartCycle int
	Duration   int
	Resources  []resource.Kind
}

// Service owns the resource trackers and the placement timeline of one
// scheduling pass.
type Service struct {
	direction schedule.Direction
	grid      grid.Grid
	horizon   int
	resources []resource.Resource
	timeline  *placement.Timeline
	solver    *deadlock.Solver
}

// New builds a manager from a validated descriptor. maxCycle overrides
// the descriptor horizon when positive. Any descriptor fault is a
// construction error; no partial manager is usable.
func New(descriptor *topology.Descriptor, direction schedule.Direction, maxCycle int, options ...Option) (*Service, error) {
	if descriptor == nil {
		return nil, fmt.Errorf("%w: nil descriptor", topology.ErrInvalidDescriptor)
	}
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}
	horizon := maxCycle
	if horizon <= 0 {
		horizon = descriptor.Horizon
	}
	if horizon <= 0 {
		return nil, ErrInvalidHorizon
	}

	kinds, err := descriptor.Kinds()
	if err != nil {
		return nil, err
	}
	ret := &Service{
		direction: direction,
		grid:      descriptor.Grid,
		horizon:   horizon,
	}
	for _, option := range options {
		option(ret)
	}
	if len(ret.resources) == 0 {
		config := resource.Config{
			Grid:      descriptor.Grid,
			Direction: direction,
			Horizon:   horizon,
			Qubits:    descriptor.QubitCount(),
		}
		for _, kind := range kinds {
			tracker, err := resource.New(kind, config)
			if err != nil {
				return nil, err
			}
			ret.resources = append(ret.resources, tracker)
		}
	}

	seed, err := descriptor.InitialState()
	if err != nil {
		return nil, err
	}
	ret.timeline = placement.NewTimeline(horizon)
	ret.timeline.Insert(direction.InitialCycle(horizon), seed)
	ret.solver = deadlock.New(direction, ret.timeline)
	return ret, nil
}

// Direction returns the pass direction.
func (s *Service) Direction() schedule.Direction {
	return s.direction
}

// Horizon returns the schedule horizon.
func (s *Service) Horizon() int {
	return s.horizon
}

// Timeline exposes the placement history accumulated so far.
func (s *Service) Timeline() *placement.Timeline {
	return s.timeline
}

// Kinds returns the kinds of the configured resource trackers.
func (s *Service) Kinds() []resource.Kind {
	kinds := make([]resource.Kind, 0, len(s.resources))
	for _, tracker := range s.resources {
		kinds = append(kinds, tracker.Kind())
	}
	return kinds
}

// queryCycle is the cycle whose effective placement constrains the
// instruction: its start going forward, its end going backward.
func (s *Service) queryCycle(start, duration int) int {
	if s.direction == schedule.Forward {
		return start
	}
	return start + duration
}

// Available reports whether every configured resource can accept the
// instruction at the candidate start cycle.
func (s *Service) Available(ctx context.Context, start int, ins *circuit.Instruction) (bool, error) {
	state, err := s.timeline.StateAt(s.queryCycle(start, ins.Duration), s.direction)
	if err != nil {
		return false, err
	}
	for _, tracker := range s.resources {
		ok, err := tracker.Available(start, ins, state)
		if err != nil {
			return false, fmt.Errorf("%s: %w", tracker.Kind(), err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Reserve commits the instruction at the start cycle: every resource
// records its busy window and a shuttle appends the moved placement to
// the timeline. The caller must have seen a passing Available with
// identical arguments immediately before.
func (s *Service) Reserve(ctx context.Context, start int, ins *circuit.Instruction) (commit *Commit, err error) {
	ctx, span := tracing.StartSpan(ctx, "manager.reserve")
	span.WithAttributes(map[string]string{
		"operation": ins.Name,
		"cycle":     strconv.Itoa(start),
		"direction": s.direction.String(),
	})
	defer func() { tracing.EndSpan(span, err) }()

	state, err := s.timeline.StateAt(s.queryCycle(start, ins.Duration), s.direction)
	if err != nil {
		return nil, err
	}
	for _, tracker := range s.resources {
		if err = tracker.Reserve(start, ins, state); err != nil {
			return nil, fmt.Errorf("%s: %w", tracker.Kind(), err)
		}
	}
	if ins.IsShuttle() {
		if err = s.commitShuttle(start, ins); err != nil {
			return nil, err
		}
	}
	return &Commit{
		ID:         idgen.New(),
		Name:       ins.Name,
		StartCycle: start,
		Duration:   ins.Duration,
		Resources:  s.Kinds(),
	}, nil
}

// commitShuttle appends the post-move placement. Forward applies the
// named move to the qubit at the origin operand; backward unwinds it,
// applying the opposite move to the qubit sitting at the destination.
func (s *Service) commitShuttle(start int, ins *circuit.Instruction) error {
	move, ok := circuit.MoveOf(ins.Name)
	if !ok {
		return fmt.Errorf("%w: %q is not a shuttle operation", resource.ErrBadOperand, ins.Name)
	}
	operand := ins.Primary()
	if s.direction == schedule.Backward {
		operand, ok = ins.Secondary()
		if !ok {
			return fmt.Errorf("%w: %s needs a destination operand", resource.ErrBadOperand, ins.Name)
		}
		move = move.Opposite()
	}
	cell, err := s.grid.CellOf(operand)
	if err != nil {
		return err
	}

	base, err := s.timeline.StateAt(s.queryCycle(start, ins.Duration), s.direction)
	if err != nil {
		return err
	}
	id, occupied := base.QubitAt(cell)
	if !occupied {
		return fmt.Errorf("%w: no qubit at %v for %s", resource.ErrBadOperand, cell, ins.Name)
	}
	next := base.Clone()
	if err := next.Shuttle(id, move); err != nil {
		return err
	}
	s.timeline.Insert(s.direction.CommitCycle(start, ins.Duration), next)
	return nil
}

// SolveDeadlock attempts bounded repair of the placement conflict that
// blocks the shuttle at the candidate cycle. Repair moves are committed
// into the timeline as relocation states; an unsolved outcome means the
// instruction is unschedulable at this cycle.
func (s *Service) SolveDeadlock(ctx context.Context, start int, ins *circuit.Instruction) (outcome deadlock.Outcome, err error) {
	ctx, span := tracing.StartSpan(ctx, "manager.solveDeadlock")
	span.WithAttributes(map[string]string{
		"operation": ins.Name,
		"cycle":     strconv.Itoa(start),
	})
	defer func() { tracing.EndSpan(span, err) }()

	return s.solver.Solve(s.queryCycle(start, ins.Duration), ins)
}
