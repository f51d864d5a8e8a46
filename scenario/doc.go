// Package scenario loads YAML topology and request files and plays them
// against an rsa.Session.
//
// A file lists explicit nodes and links, optional generated topologies
// (built with package builder) and an ordered list of requests:
//
//	name: metro
//	nodes: [A, B, C]
//	links:
//	  - {a: A, b: B, weight: 1}
//	  - {a: B, b: C, weight: 1}
//	seed: 7
//	generate:
//	  - {kind: ring, n: 6, id_prefix: R, weight: {dist: uniform, min: 1, max: 5}}
//	  - {kind: random, n: 8, p: 0.3, id_scheme: excel, weight: {dist: exponential, rate: 0.5}}
//	  - {kind: star, n: 5, id_scheme: hex, seed: 3, weight: {dist: normal, mean: 4, stddev: 1}}
//	requests:
//	  - {source: A, destination: C, slots: 10, wavelength: 0}
//	  - {op: compare, source: A, destination: C, slots: 5}
//	  - {op: reachable, source: A, hops: 2, slots: 4, wavelength: 0}
//	  - {op: free, source: A, destination: C, wavelength: 0}
//
// Generators without their own seed draw from one random source seeded by
// the file's seed, so a file always yields the same topology. ID schemes are
// decimal (default), symbol (A..Z, at most 26 nodes), alnum, excel and hex;
// id_prefix gives prefix+index instead. Weight distributions are constant
// (value), uniform (min, max), normal (mean, stddev) and exponential (rate).
//
// Consecutive serve requests are sent to Session.ServeBatch as one batch;
// compare, free and reachable requests run on their own, in file order.
// Every request wavelength must fit the session's wavelength count.
package scenario
