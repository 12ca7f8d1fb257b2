package outbound

// TaskDispatcher runs work on a bounded pool. *ants.Pool satisfies it.
type TaskDispatcher interface {
	Submit(task func()) error
}
