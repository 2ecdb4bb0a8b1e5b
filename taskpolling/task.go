package taskpolling

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Func defines a function type that performs a specific unit of work. Any
// arguments are bound by closing over them when the Func is created; a task
// cannot be rebound to a different function after construction.
type Func func()

// Task wraps a single bound function together with a re-fire interval and
// decides on every Update whether enough time has elapsed to invoke it.
type Task struct {
	name     string
	fn       Func
	interval time.Duration
	nextFire time.Time
	armed    bool
	clock    clockwork.Clock
	logger   *slog.Logger
}

// New creates a Task that becomes eligible to fire once interval has elapsed,
// and every interval after that. The function is bound for the task's
// lifetime.
func New(interval time.Duration, fn Func, opts ...Opts) *Task {
	task := &Task{
		fn:    fn,
		name:  fmt.Sprintf("task-%v", uuid.New()),
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(task)
	}
	task.SetInterval(interval)
	return task
}

// SetInterval stores a new re-fire interval, arms the task, and schedules the
// next fire at now plus the interval. Progress toward the previous deadline
// is discarded; changing the interval never causes an immediate fire. A zero
// interval makes the task fire on every Update.
func (t *Task) SetInterval(interval time.Duration) {
	t.interval = interval
	t.armed = true
	t.nextFire = t.clock.Now().Add(interval)
}

// SetIntervalSecs sets the re-fire interval to a duration in seconds.
func (t *Task) SetIntervalSecs(secs int64) {
	t.SetInterval(time.Duration(secs) * time.Second)
}

// SetIntervalMillis sets the re-fire interval to a duration in milliseconds.
func (t *Task) SetIntervalMillis(millis int64) {
	t.SetInterval(time.Duration(millis) * time.Millisecond)
}

// SetIntervalNanos sets the re-fire interval to a duration in nanoseconds.
func (t *Task) SetIntervalNanos(nanos int64) {
	t.SetInterval(time.Duration(nanos))
}

// Update invokes the task's function if the task is due, at most once per
// call. A task whose deadline passed several intervals ago still fires a
// single time, and the next deadline is computed from the current time, not
// from the missed one. The function runs synchronously on the caller's
// stack; a panic inside it propagates to the caller of Update.
func (t *Task) Update() {
	if !t.canFire() {
		return
	}
	t.log("firing task %s", t.name)
	t.fn()
}

// canFire reports whether the task is due and, if so, reschedules it. An
// unarmed task is never due.
func (t *Task) canFire() bool {
	if !t.armed {
		return false
	}
	now := t.clock.Now()
	if now.Before(t.nextFire) {
		return false
	}
	t.nextFire = now.Add(t.interval)
	return true
}

func (t *Task) log(format string, a ...any) {
	if t.logger != nil {
		msg := fmt.Sprintf(format, a...)
		t.logger.Info(msg)
	}
}
