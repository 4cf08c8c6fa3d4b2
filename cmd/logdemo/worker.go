package main

import (
	"sync"
	"time"

	"github.com/kestrelworks/logging"
)

// worker stands in for a background component that logs from its own
// goroutine.
type worker struct {
	name string
	log  logging.Leveled
}

func newWorker(log logging.Leveled) *worker {
	return &worker{name: "worker", log: log}
}

// run logs from the calling goroutine, then from a second one, so the
// per-record thread identifiers diverge.
func (w *worker) run() {
	_ = w.log.Infof("running %s", w.name)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = w.log.Info("thread started in worker")
		for i := 0; i < 5; i++ {
			time.Sleep(100 * time.Millisecond)
			_ = w.log.Debugf("thread iteration: %d", i)
		}
	}()
	wg.Wait()
}

func runWorker() {
	log, err := logging.Default()
	if err != nil {
		return
	}
	_ = log.Debug("entering worker stage")
	_ = log.Fatal("major error occurred in worker")
	newWorker(log).run()
}
