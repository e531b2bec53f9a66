package domain

// ConsumerState: состояние цикла консьюмера.
type ConsumerState int32

const (
	StateIdle ConsumerState = iota
	StatePolling
	StateDispatching
	StateCommitting
	StateRetrying
	StateStopped
	StateCrashed
)

var stateNames = [...]string{"idle", "polling", "dispatching", "committing", "retrying", "stopped", "crashed"}

func (s ConsumerState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal: из этого состояния цикл уже не выйдет.
func (s ConsumerState) Terminal() bool { return s == StateStopped || s == StateCrashed }
