package store

import (
	"context"
	"errors"

	"moneytracker/internal/api"
)

// The generic operation lifecycles shared by the three collections.
// Each follows the same contract: begin (loading on, error cleared),
// run the remote call, then settle. A failed call surfaces its
// normalized message in the error field and leaves the items
// untouched; a stale completion is discarded entirely.

func fetchAll[T Entity](ctx context.Context, c *Collection[T], fetch func(context.Context) ([]T, error), fallback string) error {
	seq := c.begin(false)

	items, err := fetch(ctx)
	if err != nil {
		c.fail(seq, userMessage(err, fallback))
		return err
	}

	c.settle(seq, func() {
		c.items = items
	})
	return nil
}

func fetchByID[T Entity](ctx context.Context, c *Collection[T], fetch func(context.Context) (T, error), fallback string) error {
	seq := c.begin(false)

	item, err := fetch(ctx)
	if err != nil {
		c.fail(seq, userMessage(err, fallback))
		return err
	}

	c.settle(seq, func() {
		c.selected = &item
	})
	return nil
}

func createItem[T Entity](ctx context.Context, c *Collection[T], create func(context.Context) (T, error), success, fallback string) error {
	seq := c.begin(true)

	item, err := create(ctx)
	if err != nil {
		c.fail(seq, userMessage(err, fallback))
		return err
	}

	c.settle(seq, func() {
		c.items = append(c.items, item)
		c.success = success
	})
	return nil
}

func updateItem[T Entity](ctx context.Context, c *Collection[T], update func(context.Context) (T, error), success, fallback string) error {
	seq := c.begin(true)

	item, err := update(ctx)
	if err != nil {
		c.fail(seq, userMessage(err, fallback))
		return err
	}

	c.settle(seq, func() {
		for i := range c.items {
			if c.items[i].EntityID() == item.EntityID() {
				c.items[i] = item
				break
			}
		}
		c.success = success
	})
	return nil
}

// patchItem shallow-merges the server's partial response into the
// matching item via merge; fields the server did not return keep their
// prior value.
func patchItem[T Entity, P any](ctx context.Context, c *Collection[T], id string, patch func(context.Context) (P, error), merge func(T, P) T, success, fallback string) error {
	seq := c.begin(true)

	p, err := patch(ctx)
	if err != nil {
		c.fail(seq, userMessage(err, fallback))
		return err
	}

	c.settle(seq, func() {
		for i := range c.items {
			if c.items[i].EntityID() == id {
				c.items[i] = merge(c.items[i], p)
				break
			}
		}
		c.success = success
	})
	return nil
}

func deleteItem[T Entity](ctx context.Context, c *Collection[T], id string, del func(context.Context) error, success, fallback string) error {
	seq := c.begin(true)

	if err := del(ctx); err != nil {
		c.fail(seq, userMessage(err, fallback))
		return err
	}

	c.settle(seq, func() {
		kept := c.items[:0]
		for _, item := range c.items {
			if item.EntityID() != id {
				kept = append(kept, item)
			}
		}
		c.items = kept
		c.success = success
	})
	return nil
}

// userMessage picks the message surfaced in the collection's error
// field: the normalized API message when there is one, the operation's
// fallback otherwise.
func userMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
