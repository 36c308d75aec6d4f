package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given background workers. They are started
// in the order provided.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
