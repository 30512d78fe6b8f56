package main

import (
	"bytes"
	"context"
	"os"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/config"
	"github.com/9seconds/cartographer/providers"
	"github.com/juju/errors"
	"github.com/spf13/afero"
)

func runIngest(ctx context.Context) error {
	family, err := cartolib.ParseFamily(*ingestFamily)
	if err != nil {
		return errors.Annotate(err, "incorrect family")
	}

	source, err := providers.New(*ingestKind)
	if err != nil {
		return err
	}

	name := *ingestName
	if name == "" {
		name = source.Name()
	}

	fs := afero.NewOsFs()
	log := newLogger(os.Stderr, "ingest")
	store := cartolib.NewStore(fs, log)

	dataset, err := store.Load(ctx, *ingestDataset)
	if err != nil {
		return err
	}

	reader, err := makeFetcher(fs, config.HTTP{}).Open(ctx, *ingestLocation)
	if err != nil {
		return errors.Annotatef(err, "cannot open %s", *ingestLocation)
	}

	defer reader.Close()

	entries, err := source.Collect(ctx, reader, log)
	if err != nil {
		return errors.Annotatef(err, "cannot collect %s", *ingestLocation)
	}

	stats := cartolib.Ingest(dataset, name, entries, family, log)

	if err := store.Save(*ingestDataset, dataset); err != nil {
		return err
	}

	log.IngestReport(stats)
	printIngestReport(os.Stdout, []cartolib.IngestStats{stats})

	return nil
}

func runConsolidate(ctx context.Context) error {
	reserved, err := cartolib.NewReservedSet(*consolidateReserved...)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	log := newLogger(os.Stderr, "consolidate")
	store := cartolib.NewStore(fs, log)

	dataset, err := store.Load(ctx, *consolidateDataset)
	if err != nil {
		return err
	}

	result, stats := cartolib.NewConsolidator(log, reserved).Consolidate(dataset)

	output := *consolidateOutput
	if output == "" {
		output = *consolidateDataset
	}

	if err := store.Save(output, result); err != nil {
		return err
	}

	log.ConsolidateReport(stats)

	if *consolidateMMDB != "" {
		if err := exportMMDB(store, *consolidateMMDB, result); err != nil {
			return err
		}
	}

	printStats(os.Stdout, stats)

	return nil
}

func runBuild(ctx context.Context) error {
	file, err := os.Open(*buildConfig)
	if err != nil {
		return errors.Annotate(err, "cannot open config")
	}

	defer file.Close()

	conf, err := config.Parse(file)
	if err != nil {
		return err
	}

	sources, err := makeSources(conf)
	if err != nil {
		return err
	}

	reserved, err := cartolib.NewReservedSet(conf.Reserved...)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	ingestLog := newLogger(os.Stderr, "ingest")
	consolidateLog := newLogger(os.Stderr, "consolidate")
	store := cartolib.NewStore(fs, ingestLog)

	dataset, err := store.Load(ctx, conf.Dataset)
	if err != nil {
		return err
	}

	pipeline := cartolib.NewPipeline(makeFetcher(fs, conf.HTTP),
		cartolib.NewConsolidator(consolidateLog, reserved),
		ingestLog,
		conf.GetWorkerPoolSize())

	result, report, err := pipeline.Run(ctx, dataset, sources)
	if err != nil {
		return err
	}

	for _, v := range report.Sources {
		ingestLog.IngestReport(v)
	}

	if err := store.Save(conf.GetOutput(), result); err != nil {
		return err
	}

	consolidateLog.ConsolidateReport(report.Stats)

	if conf.MMDB != "" {
		if err := exportMMDB(store, conf.MMDB, result); err != nil {
			return err
		}
	}

	printIngestReport(os.Stdout, report.Sources)
	printStats(os.Stdout, report.Stats)

	return nil
}

func exportMMDB(store *cartolib.Store, path string, dataset *cartolib.Dataset) error {
	log := newLogger(os.Stderr, "export")
	buf := bytes.Buffer{}

	written, err := cartolib.WriteMMDB(&buf, dataset, log)
	if err != nil {
		return err
	}

	if err := cartolib.VerifyMMDB(buf.Bytes(), written); err != nil {
		return errors.Annotate(err, "mmdb verification has failed")
	}

	if err := store.WriteFile(path, buf.Bytes()); err != nil {
		return err
	}

	log.ExportReport(path, written.Len())

	return nil
}
