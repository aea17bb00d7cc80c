package domain

import (
	m "gooze.dev/pkg/covtrace/internal/model"
)

type exitOutcome int

const (
	exitMatched exitOutcome = iota
	exitRootFinished
	exitDiscarded
	exitEmpty
)

// CallStack tracks the active frames of one logical thread of control and the
// frames that already finished. It is not safe for concurrent use; the owning
// trace serialises access.
type CallStack struct {
	frames   []*m.MethodCall
	finished []*m.MethodCall
	lastID   int
}

// NewCallStack creates a stack holding only the root frame.
func NewCallStack(capacity int) *CallStack {
	s := &CallStack{finished: make([]*m.MethodCall, 0, capacity)}
	s.frames = append(s.frames, newRootFrame())

	return s
}

func newRootFrame() *m.MethodCall {
	return m.NewMethodCall("", "", 0, 0, 0)
}

// Push opens a new frame and returns it.
func (s *CallStack) Push(className, methodName string, callingObjectID int) *m.MethodCall {
	s.lastID++
	call := m.NewMethodCall(className, methodName, s.lastID, callingObjectID, len(s.frames))
	s.frames = append(s.frames, call)

	return call
}

// Top returns the innermost active frame, or nil when the stack is empty.
func (s *CallStack) Top() *m.MethodCall {
	if len(s.frames) == 0 {
		return nil
	}

	return s.frames[len(s.frames)-1]
}

// Depth returns the number of active frames, root included.
func (s *CallStack) Depth() int {
	return len(s.frames)
}

func (s *CallStack) pop() *m.MethodCall {
	top := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]

	return top
}

// Exit closes the innermost frame, which is expected to belong to methodName.
//
// A mismatch happens when an exception or timeout skipped exit events. The root
// frame is finished if it has positions, any other frame is dropped.
func (s *CallStack) Exit(methodName string) exitOutcome {
	top := s.Top()
	if top == nil {
		return exitEmpty
	}

	if top.MethodName == methodName {
		s.finished = append(s.finished, s.pop())
		return exitMatched
	}

	if top.IsRoot() && top.Len() > 0 {
		s.finished = append(s.finished, s.pop())
		return exitRootFinished
	}

	s.pop()

	return exitDiscarded
}

// FinishStale moves the top frame into the finished list when it does not
// belong to methodName and is not the root. It reports whether a frame moved.
func (s *CallStack) FinishStale(methodName string) bool {
	top := s.Top()
	if top == nil || top.MethodName == methodName || top.IsRoot() {
		return false
	}

	s.finished = append(s.finished, s.pop())

	return true
}

// FinishAll moves every active frame into the finished list, innermost first,
// and returns how many moved.
func (s *CallStack) FinishAll() int {
	n := len(s.frames)
	for len(s.frames) > 0 {
		s.finished = append(s.finished, s.pop())
	}

	return n
}

// Finished returns the finished frames in finish order. The slice is owned by
// the stack.
func (s *CallStack) Finished() []*m.MethodCall {
	return s.finished
}

// Context snapshots the active frames, outermost first.
func (s *CallStack) Context() m.CallContext {
	frames := make([]string, 0, len(s.frames))
	for _, f := range s.frames {
		if f.IsRoot() {
			continue
		}

		frames = append(frames, f.FullName())
	}

	return m.CallContext{Frames: frames}
}

// Clone returns a deep copy.
func (s *CallStack) Clone() *CallStack {
	return &CallStack{
		frames:   cloneCalls(s.frames),
		finished: cloneCalls(s.finished),
		lastID:   s.lastID,
	}
}

// Reset drops every frame and reseeds the root.
func (s *CallStack) Reset() {
	clear(s.frames)
	clear(s.finished)
	s.frames = append(s.frames[:0], newRootFrame())
	s.finished = s.finished[:0]
	s.lastID = 0
}

func cloneCalls(in []*m.MethodCall) []*m.MethodCall {
	out := make([]*m.MethodCall, len(in), max(len(in), cap(in)))
	for i, c := range in {
		out[i] = c.Clone()
	}

	return out
}
