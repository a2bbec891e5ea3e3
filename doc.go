// Package volcanium plans which valves to open in a tunnel network so that the
// most pressure is released before time runs out.
//
// Packages, leaf first:
//
//	valve/    record parsing and the fixed-width valve Set
//	matrix/   dense hop-count matrix and Floyd–Warshall closure
//	network/  compacts parsed records into the searchable Graph
//	search/   explicit-stack search over valve-opening orders (one agent)
//	pairing/  best disjoint pair of outcomes (two agents)
//	solver/   pipeline with logging, metrics and run ids
//	config/   koanf-backed settings
//	logger/   zerolog adapter
//	metrics/  Prometheus recorder and textfile export
//
// Quick ASCII example:
//
//	BB(13)─AA─DD(20)
//	       │
//	       II─JJ(21)
//
// Agents start at AA; BB, DD and JJ release 13, 20 and 21 per minute once open.
//
//	go install github.com/katalvlaran/volcanium/cmd/volcanium@latest
package volcanium
