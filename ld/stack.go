package ld

// Stack tracks the contexts of the nodes enclosing the one currently being
// read or written. A Stack belongs to a single read or write call and is not
// safe for concurrent use.
type Stack struct {
	frames []Context
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push enters a nested node whose effective context is c.
func (s *Stack) Push(c Context) {
	s.frames = append(s.frames, c)
}

// Pop leaves the current node. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Peek returns the nearest enclosing context, or ActivityStreams at the root.
func (s *Stack) Peek() Context {
	if len(s.frames) == 0 {
		return ActivityStreams
	}
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of enclosing nodes.
func (s *Stack) Depth() int {
	return len(s.frames)
}
