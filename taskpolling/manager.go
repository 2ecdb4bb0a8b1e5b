package taskpolling

import (
	"github.com/google/uuid"
)

// Manager owns a keyed collection of tasks and advances them all from a
// single polling loop.
type Manager struct {
	tasks map[string]*Task
}

// NewManager creates and returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		tasks: make(map[string]*Task),
	}
}

// Add stores a task in the manager under the given key. If the key is
// already in use the call does nothing: the existing entry is untouched and
// the incoming task is not stored, so the caller's handle to it remains
// valid and usable.
func (m *Manager) Add(key string, task *Task) {
	if _, ok := m.tasks[key]; ok {
		return
	}
	m.tasks[key] = task
}

// AddTask stores a task under a generated key and returns that key. The key
// is unique for the lifetime of the process but carries no meaning and is
// not stable across runs; keep it only if the task may need removing later.
func (m *Manager) AddTask(task *Task) string {
	key := uuid.NewString()
	m.Add(key, task)
	return key
}

// Remove deletes the task stored under key. Removing an absent key does
// nothing. A removed task no longer fires on subsequent Update calls, even
// if its deadline had already passed.
func (m *Manager) Remove(key string) {
	delete(m.tasks, key)
}

// Update polls every owned task once, firing those that are due. Fire order
// between distinct tasks within one call is unspecified. The task set is
// snapshotted on entry, so a firing task may call Add or Remove on this
// manager; such changes take effect on the next Update.
func (m *Manager) Update() {
	sweep := make([]*Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		sweep = append(sweep, task)
	}
	for _, task := range sweep {
		task.Update()
	}
}

// Len reports the number of tasks currently owned by the manager.
func (m *Manager) Len() int {
	return len(m.tasks)
}
