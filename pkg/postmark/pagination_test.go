package postmark_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

func TestFetchAll(t *testing.T) {
	t.Parallel()

	all := []int{1, 2, 3, 4, 5}

	var seen []postmark.Pagination

	items, err := postmark.FetchAll(context.Background(), 2, func(_ context.Context, page postmark.Pagination) (*postmark.Page[int], error) {
		seen = append(seen, page)

		end := min(page.Offset+page.Count, len(all))

		return &postmark.Page[int]{TotalCount: len(all), Items: all[page.Offset:end]}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, all, items)
	assert.Equal(t, []postmark.Pagination{
		{Count: 2, Offset: 0},
		{Count: 2, Offset: 2},
		{Count: 2, Offset: 4},
	}, seen)
}

func TestFetchAll_DefaultPageSizeAndEmptyPage(t *testing.T) {
	t.Parallel()

	calls := 0

	items, err := postmark.FetchAll(context.Background(), 0, func(_ context.Context, page postmark.Pagination) (*postmark.Page[string], error) {
		calls++

		assert.Equal(t, postmark.DefaultCount, page.Count)

		if page.Offset > 0 {
			return &postmark.Page[string]{TotalCount: 10}, nil
		}

		return &postmark.Page[string]{TotalCount: 10, Items: []string{"a", "b"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, 2, calls)
}

func TestFetchAll_Error(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")

	items, err := postmark.FetchAll(context.Background(), 10, func(context.Context, postmark.Pagination) (*postmark.Page[int], error) {
		return nil, fetchErr
	})
	require.ErrorIs(t, err, fetchErr)
	assert.Contains(t, err.Error(), "offset 0")
	assert.Nil(t, items)
}
