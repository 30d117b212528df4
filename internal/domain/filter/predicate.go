// Package filter combina predicados independientes sobre filas ya cargadas
// (listado de ventas, visor de registros).
package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate decide si una fila se conserva.
type Predicate[T any] func(T) bool

// All conjunción con cortocircuito. Los predicados nil se ignoran, así un
// criterio vacío no restringe nada.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return func(v T) bool {
		for _, p := range active {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply devuelve un slice nuevo (nunca nil) con las filas que cumplen p.
// Con p nil conserva todas.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p == nil || p(it) {
			out = append(out, it)
		}
	}
	return out
}

// Fold normaliza texto para comparaciones sin distinguir mayúsculas ni
// variantes de caja Unicode.
// cases.Caser guarda estado, por eso se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ContainsFold indica si needle aparece en haystack sin distinguir caja.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
