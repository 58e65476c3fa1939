package affine

import "sync"

const DEFAULT_WORKERS = 1

// task runs fn over every index of data, split into contiguous chunks, one goroutine per chunk.
// Each index is visited exactly once, so fn may write to its own slot of an output slice.
func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
