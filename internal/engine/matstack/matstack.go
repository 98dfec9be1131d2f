// Package matstack provides the transform stack used to compose nested
// object placements.
//
// The stack always holds at least the base frame. Every elementary transform
// right-multiplies the top frame, so a transform applied later acts in the
// local frame of the ones applied before it.
package matstack

import (
	"errors"

	"github.com/Faultbox/glade/pkg/math"
)

var (
	// ErrUnderflow is the panic value raised when popping the base frame.
	ErrUnderflow = errors.New("matstack: pop would remove the base frame")

	// ErrUnbalanced is the panic value raised when a Scope is popped while
	// the stack is not at the depth its Push produced.
	ErrUnbalanced = errors.New("matstack: unbalanced scope")
)

// Stack is a stack of 4x4 transforms.
type Stack struct {
	frames []math.Mat4
}

// New returns a stack holding a single identity frame.
func New() *Stack {
	s := &Stack{frames: make([]math.Mat4, 1, 16)}
	s.frames[0] = math.Identity()
	return s
}

// Depth returns the number of frames, including the base frame.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Top returns the current composed transform.
func (s *Stack) Top() math.Mat4 {
	return s.frames[len(s.frames)-1]
}

// Push duplicates the top frame. The returned Scope pops it again.
func (s *Stack) Push() Scope {
	s.frames = append(s.frames, s.Top())
	return Scope{stack: s, depth: len(s.frames)}
}

// Pop removes the top frame. It panics with ErrUnderflow if only the base
// frame remains.
func (s *Stack) Pop() {
	if len(s.frames) <= 1 {
		panic(ErrUnderflow)
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// With runs fn inside a pushed frame and pops it afterwards, also when fn panics.
func (s *Stack) With(fn func()) {
	defer s.Push().Pop()
	fn()
}

// LoadIdentity replaces the top frame with identity.
func (s *Stack) LoadIdentity() {
	s.frames[len(s.frames)-1] = math.Identity()
}

// Load replaces the top frame with m.
func (s *Stack) Load(m math.Mat4) {
	s.frames[len(s.frames)-1] = m
}

// Multiply right-multiplies the top frame by m.
func (s *Stack) Multiply(m math.Mat4) {
	top := len(s.frames) - 1
	s.frames[top] = s.frames[top].Mul(m)
}

// Translate right-multiplies the top frame by a translation.
func (s *Stack) Translate(v math.Vec3) {
	s.Multiply(math.TranslateVec(v))
}

// Rotate right-multiplies the top frame by a rotation of angle radians about axis.
func (s *Stack) Rotate(angle float32, axis math.Vec3) {
	s.Multiply(math.RotateAxis(axis, angle))
}

// Scale right-multiplies the top frame by a per-axis scale.
func (s *Stack) Scale(v math.Vec3) {
	s.Multiply(math.Scale(v.X, v.Y, v.Z))
}

// ScaleUniform right-multiplies the top frame by a uniform scale.
func (s *Stack) ScaleUniform(f float32) {
	s.Multiply(math.Scale(f, f, f))
}

// Scope is the handle returned by Push. Pop releases exactly the frame that
// Push created; calling it more than once, or after an inner frame leaked, panics.
type Scope struct {
	stack *Stack
	depth int
}

// Pop pops the frame owned by this scope.
func (sc Scope) Pop() {
	if sc.stack == nil {
		return
	}
	if sc.stack.Depth() != sc.depth {
		panic(ErrUnbalanced)
	}
	sc.stack.Pop()
}
