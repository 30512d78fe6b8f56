package cartolib

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/panjf2000/ants/v2"
)

const workerPoolExpireTime = time.Minute

// PipelineSource is a configured source: an adapter, its location and
// address family filter.
type PipelineSource struct {
	Name     string
	Source   Source
	Location string
	Family   Family
}

// BuildReport is a summary of the pipeline run.
type BuildReport struct {
	Sources []IngestStats
	Stats   Stats
}

// Pipeline fetches and collects sources concurrently, applies them
// to a dataset sequentially in configured order and consolidates the
// result.
type Pipeline struct {
	fetcher      *Fetcher
	consolidator *Consolidator
	logger       Logger
	poolSize     int
}

// Run ingests all sources into a dataset and returns a consolidated
// one. Given dataset is populated in place.
func (p *Pipeline) Run(ctx context.Context, dataset *Dataset, sources []PipelineSource) (*Dataset, BuildReport, error) {
	report := BuildReport{
		Sources: make([]IngestStats, 0, len(sources)),
	}

	collected, err := p.Collect(ctx, sources)
	if err != nil {
		return nil, report, err
	}

	for idx, source := range sources {
		report.Sources = append(report.Sources,
			Ingest(dataset, source.Name, collected[idx], source.Family, p.logger))
	}

	result, stats := p.consolidator.Consolidate(dataset)
	report.Stats = stats

	return result, report, nil
}

// Collect fetches all sources and converts them into entries. Results
// are in the same order as sources.
func (p *Pipeline) Collect(ctx context.Context, sources []PipelineSource) ([][]Entry, error) {
	pool, err := ants.NewPoolWithFunc(p.poolSize, p.collect,
		ants.WithExpiryDuration(workerPoolExpireTime))
	if err != nil {
		return nil, errors.Annotate(err, "cannot create worker pool")
	}

	defer pool.Release()

	group := newCollectGroup(ctx, pool)

	for _, source := range sources {
		if err := group.Do(source); err != nil {
			group.Wait() // nolint: errcheck

			return nil, err
		}
	}

	return group.Wait()
}

func (p *Pipeline) collect(arg interface{}) {
	task := arg.(*collectTask)

	defer task.wg.Done()

	reader, err := p.fetcher.Open(task.ctx, task.source.Location)
	if err != nil {
		task.err = err
		task.cancel()

		return
	}

	defer reader.Close()

	entries, err := task.source.Source.Collect(task.ctx, reader, p.logger)
	if err != nil {
		task.err = errors.Annotatef(err, "cannot parse %s", task.source.Location)
		task.cancel()

		return
	}

	task.entries = entries
}

func NewPipeline(fetcher *Fetcher, consolidator *Consolidator, logger Logger, poolSize int) *Pipeline {
	if poolSize < 1 {
		poolSize = 1
	}

	return &Pipeline{
		fetcher:      fetcher,
		consolidator: consolidator,
		logger:       logger,
		poolSize:     poolSize,
	}
}
