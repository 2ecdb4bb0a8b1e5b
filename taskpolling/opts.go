package taskpolling

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// Opts is a function type used to modify or configure Task instances
// at construction time.
type Opts func(task *Task)

// WithClock replaces the time source a task reads on every Update and
// interval change. Tasks default to the system clock; tests inject a
// fake clock to control simulated time.
func WithClock(clock clockwork.Clock) Opts {
	return func(task *Task) {
		task.clock = clock
	}
}

// WithName sets a custom name for a task by modifying its `Task`
// configuration. The name is only used for logging.
func WithName(name string) Opts {
	return func(task *Task) {
		task.name = name
	}
}

// WithLogging attaches a logger to the task. Each fire is logged at info
// level. Without this option a task produces no output of its own.
func WithLogging(logger *slog.Logger) Opts {
	return func(task *Task) {
		task.logger = logger
	}
}
