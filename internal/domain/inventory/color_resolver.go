package inventory

import (
	"sort"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

// ColorSwatch color que debe mostrarse para una unidad.
// Hex queda vacío cuando el material no tiene un #RRGGBB válido.
type ColorSwatch struct {
	MaterialID string
	Name       string
	Hex        string
}

// ColorResolver una estrategia de resolución de colores.
// handled=true detiene la cadena aunque la lista resultante esté vacía.
type ColorResolver interface {
	Resolve(u entity.InventoryUnit, materials map[string]entity.Material) (colors []ColorSwatch, handled bool)
}

// ColorResolverFunc adapta una función al contrato ColorResolver.
type ColorResolverFunc func(u entity.InventoryUnit, materials map[string]entity.Material) ([]ColorSwatch, bool)

// Resolve implementa ColorResolver.
func (f ColorResolverFunc) Resolve(u entity.InventoryUnit, materials map[string]entity.Material) ([]ColorSwatch, bool) {
	return f(u, materials)
}

// DefaultColorResolvers cadena en orden de precedencia:
//  1. asignación multimaterial (si no está vacía, decide siempre)
//  2. material unido a la fila
//  3. material_id resuelto contra el catálogo
//
// Alterar el orden cambia el color de las filas heredadas que traen asignación
// y material a la vez.
func DefaultColorResolvers() []ColorResolver {
	return []ColorResolver{
		ColorResolverFunc(resolveMultimaterial),
		ColorResolverFunc(resolveJoinedMaterial),
		ColorResolverFunc(resolveMaterialRef),
	}
}

// ResolveColors recorre la cadena y devuelve la primera respuesta.
// Nunca devuelve nil: una unidad sin color produce una lista vacía.
func ResolveColors(u entity.InventoryUnit, materials map[string]entity.Material, chain []ColorResolver) []ColorSwatch {
	for _, r := range chain {
		if colors, ok := r.Resolve(u, materials); ok {
			if colors == nil {
				colors = []ColorSwatch{}
			}
			return colors
		}
	}
	return []ColorSwatch{}
}

func resolveMultimaterial(u entity.InventoryUnit, materials map[string]entity.Material) ([]ColorSwatch, bool) {
	if len(u.MultimaterialMapping) == 0 {
		return nil, false
	}

	slots := make(entity.MultimaterialMapping, len(u.MultimaterialMapping))
	copy(slots, u.MultimaterialMapping)
	// slots no numéricos al final, conservando su orden relativo
	sort.SliceStable(slots, func(i, j int) bool {
		a, okA := money.Parse(slots[i].Slot)
		b, okB := money.Parse(slots[j].Slot)
		if okA != okB {
			return okA
		}
		return okA && a.LessThan(b)
	})

	colors := make([]ColorSwatch, 0, len(slots))
	for _, s := range slots {
		m, ok := materials[s.MaterialID]
		if !ok {
			continue
		}
		colors = append(colors, swatch(m))
	}
	return colors, true
}

func resolveJoinedMaterial(u entity.InventoryUnit, _ map[string]entity.Material) ([]ColorSwatch, bool) {
	if u.Material == nil {
		return nil, false
	}
	return []ColorSwatch{swatch(*u.Material)}, true
}

func resolveMaterialRef(u entity.InventoryUnit, materials map[string]entity.Material) ([]ColorSwatch, bool) {
	if u.MaterialID == nil {
		return nil, false
	}
	m, ok := materials[*u.MaterialID]
	if !ok {
		return nil, false
	}
	return []ColorSwatch{swatch(m)}, true
}

func swatch(m entity.Material) ColorSwatch {
	sw := ColorSwatch{MaterialID: m.ID, Name: m.Color}
	if m.ValidHex() {
		sw.Hex = m.ColorHex
	}
	return sw
}
