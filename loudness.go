package main

// loudnessQueue carries block loudness measurements from the audio goroutine
// to the tick loop. The producer never blocks; samples are dropped once the
// queue is full, and the consumer coalesces everything queued since the last
// tick into a single maximum.
type loudnessQueue struct {
	ch chan float32
}

func newLoudnessQueue(depth int) *loudnessQueue {
	if depth < 1 {
		depth = 1
	}
	return &loudnessQueue{ch: make(chan float32, depth)}
}

// Push enqueues a sample without blocking.
func (q *loudnessQueue) Push(v float32) {
	select {
	case q.ch <- v:
	default:
	}
}

// DrainMax consumes every queued sample and returns the maximum, or 0 when
// nothing was queued.
func (q *loudnessQueue) DrainMax() float64 {
	var level float64
	for {
		select {
		case v := <-q.ch:
			if float64(v) > level {
				level = float64(v)
			}
		default:
			return level
		}
	}
}
