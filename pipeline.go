package plume

import "sync"

// scan splits [0, count) into contiguous chunks and processes them from
// workersCount goroutines.
func scan(workersCount, count int, fn func(slot int)) {
	var wg sync.WaitGroup
	chunkSize := (count + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for slot := start; slot < end; slot++ {
				fn(slot)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, count))
	}
	wg.Wait()
}

// ScanBodies runs fn for every live slot across the given number of worker
// goroutines. This is the read-phase access pattern: integration and solving
// stages walk the pose/velocity/inertia arrays in parallel, and callers must
// guarantee no structural mutation runs while a scan is in flight. fn must
// only touch state that distinct slots do not share.
func (s *Set) ScanBodies(workers int, fn func(slot int)) {
	if workers < 1 {
		workers = 1
	}
	scan(workers, s.Count, fn)
}
