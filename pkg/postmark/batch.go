package postmark

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultBatchConcurrency is the number of chunks sent at once.
const DefaultBatchConcurrency = 3

// ErrEmptyBatch is returned when there is nothing to send.
var ErrEmptyBatch = errors.New("batch contains no messages")

// BatchResult is the outcome of sending one chunk.
type BatchResult struct {
	Index     int
	Offset    int
	Messages  int
	Responses []SendResponse
	Error     error
	Duration  time.Duration
}

// BatchSender sends message slices of any length as a series of batch
// requests of at most MaxBatchSize messages, with bounded concurrency.
// Chunks are never retried.
type BatchSender struct {
	email       EmailClient
	concurrency int
	chunkSize   int
}

// NewBatchSender creates a new batch sender.
func NewBatchSender(email EmailClient, concurrency int) *BatchSender {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	return &BatchSender{
		email:       email,
		concurrency: concurrency,
		chunkSize:   MaxBatchSize,
	}
}

// SetChunkSize sets the number of messages per request, clamped to
// [1, MaxBatchSize].
func (b *BatchSender) SetChunkSize(size int) {
	switch {
	case size <= 0:
		b.chunkSize = 1
	case size > MaxBatchSize:
		b.chunkSize = MaxBatchSize
	default:
		b.chunkSize = size
	}
}

// Send sends messages through /email/batch. Results are ordered by chunk.
func (b *BatchSender) Send(ctx context.Context, messages []Message) ([]BatchResult, error) {
	return runChunks(ctx, b, messages, b.email.SendBatch)
}

// SendWithTemplates sends templated messages through /email/batchWithTemplates.
func (b *BatchSender) SendWithTemplates(ctx context.Context, messages []TemplatedMessage) ([]BatchResult, error) {
	return runChunks(ctx, b, messages, b.email.SendBatchWithTemplates)
}

func runChunks[T any](
	ctx context.Context,
	sender *BatchSender,
	messages []T,
	send func(context.Context, []T) ([]SendResponse, error),
) ([]BatchResult, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyBatch
	}

	chunks := Chunk(messages, sender.chunkSize)
	results := make([]BatchResult, len(chunks))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, sender.concurrency)

	for index, chunk := range chunks {
		waitGroup.Add(1)

		go func(index int, chunk []T) {
			defer waitGroup.Done()

			result := BatchResult{
				Index:    index,
				Offset:   index * sender.chunkSize,
				Messages: len(chunk),
			}

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				result.Error = ctx.Err()
				results[index] = result

				return
			}

			defer func() { <-semaphore }()

			start := time.Now()
			result.Responses, result.Error = send(ctx, chunk)
			result.Duration = time.Since(start)
			results[index] = result
		}(index, chunk)
	}

	waitGroup.Wait()

	return results, nil
}

// Chunk splits items into consecutive slices of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)

	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}

// CollectResponses flattens chunk results in message order. Failed chunks
// contribute no responses; their errors are joined.
func CollectResponses(results []BatchResult) ([]SendResponse, error) {
	var (
		responses []SendResponse
		errs      []error
	)

	for _, result := range results {
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("chunk %d (messages %d-%d): %w",
				result.Index, result.Offset, result.Offset+result.Messages-1, result.Error))

			continue
		}

		responses = append(responses, result.Responses...)
	}

	return responses, errors.Join(errs...)
}
