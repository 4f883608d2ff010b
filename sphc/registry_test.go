// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogSize(t *testing.T) {
	if got := len(Catalog[float64]()); got != 28 {
		t.Errorf("catalog has %d entries, want 28", got)
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if diff := cmp.Diff(slices.Sorted(maps.Keys(Catalog[float64]())), names); diff != "" {
		t.Errorf("Names() mismatch (-catalog +names):\n%s", diff)
	}
}

func TestCatalogNamesAgreeAcrossPrecisions(t *testing.T) {
	names32 := slices.Sorted(maps.Keys(Catalog[float32]()))
	names64 := slices.Sorted(maps.Keys(Catalog[float64]()))
	if diff := cmp.Diff(names64, names32); diff != "" {
		t.Errorf("catalog names differ across precisions (-float64 +float32):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	fn, ok := Lookup[float64]("cf_f3")
	if !ok {
		t.Fatal(`Lookup("cf_f3") not found`)
	}
	if got := fn(1.37, 0); got != 1 {
		t.Errorf(`Lookup("cf_f3")(1.37, 0) = %v, want 1`, got)
	}

	if _, ok := Lookup[float64]("fornberg_f2"); ok {
		t.Error(`Lookup("fornberg_f2") = found, want not found`)
	}

	fn32, ok := Lookup[float32]("bellet_f4")
	if !ok {
		t.Fatal(`Lookup[float32]("bellet_f4") not found`)
	}
	if got := fn32(0, 0); got != 0 {
		t.Errorf(`Lookup[float32]("bellet_f4")(0, 0) = %v, want 0`, got)
	}
}
