package postmark

import (
	"context"
	"fmt"
)

// Page is one page of a count/offset listing.
type Page[T any] struct {
	TotalCount int
	Items      []T
}

// PageFetcher loads the page starting at offset with at most count items.
type PageFetcher[T any] func(ctx context.Context, page Pagination) (*Page[T], error)

// FetchAll walks pages of pageSize items until TotalCount items have been
// read or a page comes back empty. A non-positive pageSize uses DefaultCount.
func FetchAll[T any](ctx context.Context, pageSize int, fetch PageFetcher[T]) ([]T, error) {
	page := Pagination{Count: pageSize}.WithDefaults()

	var all []T

	for {
		result, err := fetch(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetching page at offset %d: %w", page.Offset, err)
		}

		all = append(all, result.Items...)

		if len(result.Items) == 0 || len(all) >= result.TotalCount {
			return all, nil
		}

		page.Offset += len(result.Items)
	}
}
