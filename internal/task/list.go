package task

import (
	"iter"
	"slices"
)

// List is the ordered task collection. Insertion order is display order and
// saved order. Indices are 0-based; callers convert from the 1-based numbers
// users type.
type List struct {
	tasks []*Task
}

// NewList returns a list holding tasks in the given order.
func NewList(tasks ...*Task) *List {
	return &List{tasks: slices.Clone(tasks)}
}

func (l *List) Add(t *Task) {
	l.tasks = append(l.tasks, t)
}

func (l *List) Len() int { return len(l.tasks) }

func (l *List) Get(index int) (*Task, error) {
	if err := l.validateIndex(index); err != nil {
		return nil, err
	}
	return l.tasks[index], nil
}

// Delete removes and returns the task at index. Later tasks shift down by one.
func (l *List) Delete(index int) (*Task, error) {
	if err := l.validateIndex(index); err != nil {
		return nil, err
	}
	removed := l.tasks[index]
	l.tasks = slices.Delete(l.tasks, index, index+1)
	return removed, nil
}

// All returns the tasks in display order. The returned slice is a copy;
// the tasks themselves are shared.
func (l *List) All() []*Task {
	return slices.Clone(l.tasks)
}

// Find yields tasks whose description contains keyword, in list order.
// The sequence may be ranged over any number of times.
func (l *List) Find(keyword string) iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, t := range l.tasks {
			if !t.Contains(keyword) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// FindAll collects Find into a slice. No match gives an empty slice.
func (l *List) FindAll(keyword string) []*Task {
	out := slices.Collect(l.Find(keyword))
	if out == nil {
		return []*Task{}
	}
	return out
}

func (l *List) validateIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrIndexOutOfRange
	}
	return nil
}
