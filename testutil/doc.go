// Package testutil provides shared labeling fixtures for crossclust tests.
//
// This package is intended for use in tests only. The fixtures are small and
// fully deterministic so expected table and graph values can be written out
// by hand.
package testutil
