// Package main provides the tradewright command line interface: a
// semi-automated trading assistant that drives a browser through
// fidelity.com's order-entry forms. The browser opens on the login page;
// the user logs in manually, then the requested operation runs with a
// confirmation prompt before any order is submitted.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
