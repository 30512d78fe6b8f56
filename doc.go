// Cartographer builds a single non-overlapping mapping from IP ranges
// to geolocation data out of many independent feeds.
//
// Tool itself is organized into 4 logical parts:
//
// # Cartolib
//
// cartolib is a main package of the application. It has a dataset
// document with its field merge rules, consolidation engine which
// removes overlapping and redundant prefixes, fetching and building
// pipeline and MaxMind DB export.
//
// # Providers
//
// This package has a set of source adapters: RFC 8805 geofeeds, CSV
// with address ranges, cloud provider ranges and monitoring nodes of
// uptime services. Each adapter converts its format into a list of
// prefixes with partial records.
//
// # Config
//
// TOML configuration of the build command.
//
// # Cartographer
//
// A main package wires everything into CLI with 3 commands: ingest
// collects a single source into a dataset document, consolidate
// rewrites a document into canonical form and build does both for a
// list of configured sources.
package main
