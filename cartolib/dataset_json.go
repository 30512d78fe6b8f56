package cartolib

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/juju/errors"
	"github.com/qri-io/jsonschema"
)

var recordSchema = func() *jsonschema.Schema {
	schema := &jsonschema.Schema{}

	err := json.Unmarshal([]byte(`{
        "type": "object",
        "properties": {
            "ip_range": {"type": ["string", "null"]},
            "country_code": {"type": ["string", "null"]},
            "subdivision_1_iso_code": {"type": ["string", "null"]},
            "city": {"type": ["string", "null"]},
            "postal_code": {"type": ["string", "null"]},
            "lat": {"type": ["number", "string", "null"]},
            "lng": {"type": ["number", "string", "null"]}
        }
    }`), schema)
	if err != nil {
		panic(err)
	}

	return schema
}()

type datasetDecoder struct {
	ctx     context.Context
	logger  Logger
	dataset *Dataset
}

func (d *datasetDecoder) add(prefix string, raw json.RawMessage) error {
	errs, err := recordSchema.ValidateBytes(d.ctx, raw)
	if err != nil {
		return errors.Annotatef(err, "cannot validate record of %s", prefix)
	}

	if len(errs) > 0 {
		d.logger.EntryInvalid(prefix, errs[0])

		return nil
	}

	record := Record{}

	if err := json.Unmarshal(raw, &record); err != nil {
		d.logger.EntryInvalid(prefix, err)

		return nil
	}

	d.dataset.append(Entry{Prefix: prefix, Record: record})

	return nil
}

func (d *datasetDecoder) decodeObject(decoder *json.Decoder) error {
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return errors.Annotate(err, "cannot read a key")
		}

		key, _ := token.(string)
		raw := json.RawMessage{}

		if err := decoder.Decode(&raw); err != nil {
			return errors.Annotatef(err, "cannot read a value of %s", key)
		}

		if err := d.add(key, raw); err != nil {
			return err
		}
	}

	return nil
}

func (d *datasetDecoder) decodeArray(decoder *json.Decoder) error {
	for decoder.More() {
		raw := json.RawMessage{}

		if err := decoder.Decode(&raw); err != nil {
			return errors.Annotate(err, "cannot read an array element")
		}

		head := struct {
			IPRange string `json:"ip_range"`
		}{}

		if err := json.Unmarshal(raw, &head); err != nil || head.IPRange == "" {
			d.logger.EntryInvalid(string(raw), errors.NotValidf("ip_range"))

			continue
		}

		if err := d.add(head.IPRange, raw); err != nil {
			return err
		}
	}

	return nil
}

// DecodeDataset reads a dataset document. Both object form (prefix to
// record) and legacy array form (records with ip_range field) are
// accepted. An empty document is an empty dataset. Malformed records
// are reported to logger and skipped.
func DecodeDataset(ctx context.Context, r io.Reader, logger Logger) (*Dataset, error) {
	decoder := json.NewDecoder(bufio.NewReader(r))
	state := &datasetDecoder{
		ctx:     ctx,
		logger:  logger,
		dataset: NewDataset(),
	}

	token, err := decoder.Token()

	switch {
	case errors.Is(err, io.EOF):
		return state.dataset, nil
	case err != nil:
		return nil, errors.Annotate(err, "cannot read dataset")
	}

	switch token {
	case json.Delim('{'):
		err = state.decodeObject(decoder)
	case json.Delim('['):
		err = state.decodeArray(decoder)
	default:
		return nil, ErrUnknownStructure
	}

	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); err != nil {
		return nil, errors.Annotate(err, "dataset is not closed")
	}

	return state.dataset, nil
}
