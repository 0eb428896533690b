package mode

import "fmt"

// Op is the kind of stack mutation a message requests
type Op uint8

const (
	OpPush Op = iota
	OpPop
	OpPopAndPush
	OpReplace
	OpPopUntil
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpPopAndPush:
		return "pop-and-push"
	case OpReplace:
		return "replace"
	case OpPopUntil:
		return "pop-until"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Message is one queued stack mutation
type Message struct {
	Op   Op
	Mode Mode
}

func (m Message) String() string {
	if m.Op == OpPop {
		return m.Op.String()
	}
	return fmt.Sprintf("%s(%s)", m.Op, m.Mode.ID)
}

// Queue collects stack mutations requested while a mode handles input.
// Messages are applied in the order they were enqueued.
type Queue struct {
	messages []Message
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a message
func (q *Queue) Enqueue(msg Message) {
	q.messages = append(q.messages, msg)
}

// Push requests that m be pushed on top of the stack
func (q *Queue) Push(m Mode) {
	q.Enqueue(Message{Op: OpPush, Mode: m})
}

// Pop requests that the top mode be removed
func (q *Queue) Pop() {
	q.Enqueue(Message{Op: OpPop})
}

// PopAndPush requests that the top mode be swapped for m in one step
func (q *Queue) PopAndPush(m Mode) {
	q.Enqueue(Message{Op: OpPopAndPush, Mode: m})
}

// Replace requests that the top mode be replaced by m. Like PopAndPush the
// pop and the push are applied as one change.
func (q *Queue) Replace(m Mode) {
	q.Enqueue(Message{Op: OpReplace, Mode: m})
}

// PopUntil requests that modes be popped until id is on top. PopUntil(Base)
// unwinds the stack completely.
func (q *Queue) PopUntil(id ID) {
	q.Enqueue(Message{Op: OpPopUntil, Mode: Mode{ID: id}})
}

// Len returns the number of pending messages
func (q *Queue) Len() int {
	return len(q.messages)
}

// drain returns the pending messages and empties the queue
func (q *Queue) drain() []Message {
	msgs := q.messages
	q.messages = nil
	return msgs
}
