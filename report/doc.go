// Package report renders a search.Result for people and for tools.
//
//   - Listing: a human-readable per-machine listing.
//   - WriteCSV: one row per machine (machine, jobs, load) via gocsv.
//   - WriteYAML: a Summary document via yaml.v3.
//   - CollectSysInfo: host platform, CPU model and RAM via gopsutil,
//     attached to a Summary so timings can be compared across hosts.
package report
