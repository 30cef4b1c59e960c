package ds

import (
	"fmt"
)

// MakeChunks groups elements within a slice into smaller "chunks",
// each containing n elements; the last chunk may be shorter. For example,
//
//	MakeChunks([]int{1, 2, 3, 4, 5}, 2)
//
// returns this exact value:
//
//	[][]int{{1, 2}, {3, 4}, {5}}
//
// Chunks share memory with ts.
func MakeChunks[T any](ts []T, n int) [][]T {
	if n <= 0 {
		err := fmt.Errorf("MakeChunks invalid chunk size %d", n)
		panic(err)
	}
	chunks := make([][]T, 0, len(ts)/n+1)
	for i := 0; i < len(ts); i += n {
		end := i + n
		if end > len(ts) {
			end = len(ts)
		}
		chunks = append(chunks, ts[i:end])
	}
	return chunks
}
