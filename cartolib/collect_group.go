package cartolib

import (
	"context"
	"sync"

	"github.com/juju/errors"
	"github.com/panjf2000/ants/v2"
)

type collectTask struct {
	ctx     context.Context
	source  PipelineSource
	entries []Entry
	err     error
	cancel  context.CancelFunc
	wg      *sync.WaitGroup
}

// collectGroup schedules collection of sources on a worker pool. The
// first failure cancels the rest of the group.
type collectGroup struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	pool   *ants.PoolWithFunc
	tasks  []*collectTask
}

func (c *collectGroup) Do(source PipelineSource) error {
	select {
	case <-c.ctx.Done():
		return ErrContextIsClosed
	default:
	}

	task := &collectTask{
		ctx:    c.ctx,
		source: source,
		cancel: c.cancel,
		wg:     c.wg,
	}

	c.wg.Add(1)

	if err := c.pool.Invoke(task); err != nil {
		c.wg.Done()
		c.cancel()

		return errors.Annotate(err, "cannot schedule a task")
	}

	c.tasks = append(c.tasks, task)

	return nil
}

// Wait waits until all scheduled tasks are done and returns their
// entries in order of scheduling.
func (c *collectGroup) Wait() ([][]Entry, error) {
	c.wg.Wait()
	c.cancel()

	rv := make([][]Entry, 0, len(c.tasks))

	for _, task := range c.tasks {
		if task.err != nil {
			return nil, errors.Annotatef(task.err, "cannot collect %s", task.source.Name)
		}

		rv = append(rv, task.entries)
	}

	return rv, nil
}

func newCollectGroup(ctx context.Context, pool *ants.PoolWithFunc) *collectGroup {
	ctx, cancel := context.WithCancel(ctx)

	return &collectGroup{
		ctx:    ctx,
		cancel: cancel,
		wg:     &sync.WaitGroup{},
		pool:   pool,
	}
}
