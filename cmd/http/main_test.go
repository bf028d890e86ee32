package main

import (
	"clinic-site/internal/app/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeContentCache struct {
	err   error
	calls int
}

func (f *fakeContentCache) Invalidate(ctx context.Context) error {
	f.calls++
	return f.err
}

type fakeLayout struct {
	calls int
}

func (f *fakeLayout) Invalidate() { f.calls++ }

func TestContentChangedHandler(t *testing.T) {
	event := &models.ContentChangedEvent{Event: "content.changed", DocumentID: "doc-1"}

	t.Run("Invalidates Both", func(t *testing.T) {
		contentCache, layout := &fakeContentCache{}, &fakeLayout{}

		err := contentChangedHandler(contentCache, layout)(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, 1, contentCache.calls)
		assert.Equal(t, 1, layout.calls)
	})

	t.Run("Layout Refreshes When Cache Fails", func(t *testing.T) {
		contentCache, layout := &fakeContentCache{err: errors.New("redis down")}, &fakeLayout{}

		err := contentChangedHandler(contentCache, layout)(context.Background(), event)

		assert.EqualError(t, err, "redis down")
		assert.Equal(t, 1, layout.calls)
	})
}
