// Command volcanium plans valve openings for one agent or two cooperating
// agents and prints the pressure released.
//
//	volcanium solo --input network.txt
//	volcanium pair --config volcanium.yaml < network.txt
//	volcanium all
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
