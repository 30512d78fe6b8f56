// This package provides a set of structs and functions which are used
// to consolidate IP range geolocation data.
//
// cartolib is core of the cartographer project. The rest of the
// application shows how to use this library: how to read sources, how
// to keep a dataset on disk, how to produce reports.
//
// Sources emit entries: pairs of a network prefix and a partial
// Record. Entries are accumulated into a Dataset with a field-merge
// rule (see Merge). Consolidator takes a Dataset and produces a
// canonical one: normalized country codes, no reserved address space,
// no duplicated prefixes and no subnets which repeat a location of
// their supernet. Such dataset can be exported as MaxMind DB.
package cartolib
