// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

import (
	"maps"
	"slices"
)

// Catalog returns a fresh map of every catalog entry at precision T, keyed
// by the names used in the source literature.
func Catalog[T Floats]() map[string]Func[T] {
	return map[string]Func[T]{
		"fornberg_f1": FornbergF1[T],
		"fornberg_f4": FornbergF4[T],
		"beentjes_f3": BeentjesF3[T],
		"beentjes_f4": BeentjesF4[T],
		"beentjes_f5": BeentjesF5[T],
		"renka_f3":    RenkaF3[T],
		"renka_f4":    RenkaF4[T],
		"renka_f5":    RenkaF5[T],
		"reegar_f2":   ReegarF2[T],
		"reegar_f3":   ReegarF3[T],
		"reegar_f4":   ReegarF4[T],
		"bellet_f4":   BelletF4[T],
		"franke":      Franke[T],
		"cf_f1":       CfF1[T],
		"cf_f2":       CfF2[T],
		"cf_f3":       CfF3[T],
		"cf_f4":       CfF4[T],
		"cf_f5":       CfF5[T],
		"cf_f6":       CfF6[T],
		"cf_f7":       CfF7[T],
		"cf_f8":       CfF8[T],
		"cf_f9":       CfF9[T],
		"cf_f10":      CfF10[T],
		"cf_f11":      CfF11[T],
		"cf_f12":      CfF12[T],
		"cf_f13":      CfF13[T],
		"cf_f14":      CfF14[T],
		"cf_15":       Cf15[T],
	}
}

// Names returns the catalog entry names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(Catalog[float64]()))
}

// Lookup resolves a catalog entry by name at precision T. The second return
// reports whether the name is known.
func Lookup[T Floats](name string) (Func[T], bool) {
	fn, ok := Catalog[T]()[name]
	return fn, ok
}
