package entity

import (
	"bytes"
	"encoding/json"
	"sort"
)

// MaterialSlot una posición del cambiador de filamento y el material cargado.
// Slot es la clave numérica de orden (puede llegar como texto, "1", "2"...).
type MaterialSlot struct {
	Slot       any    `json:"slot"`
	MaterialID string `json:"material_id"`
}

// MultimaterialMapping asignación ordenada slot → material de una unidad
// multimaterial. Vacía para unidades de un solo material.
type MultimaterialMapping []MaterialSlot

// UnmarshalJSON acepta las dos formas que existen en la base:
//
//	[{"slot": 1, "material_id": "..."}, ...]
//	{"1": "uuid-material", "2": "uuid-material"}
//
// Cualquier otra forma (null, escalar, objetos sin material) produce una
// asignación vacía en vez de un error, para no invalidar la fila completa.
func (m *MultimaterialMapping) UnmarshalJSON(data []byte) error {
	*m = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		out := make(MultimaterialMapping, 0, len(raw))
		for _, item := range raw {
			var slot struct {
				Slot       any    `json:"slot"`
				SlotIndex  any    `json:"slot_index"`
				MaterialID string `json:"material_id"`
			}
			if err := decodeNumber(item, &slot); err != nil || slot.MaterialID == "" {
				continue
			}
			if slot.Slot == nil {
				slot.Slot = slot.SlotIndex
			}
			out = append(out, MaterialSlot{Slot: slot.Slot, MaterialID: slot.MaterialID})
		}
		*m = out
	case '{':
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		// orden determinista; el orden por slot numérico lo aplica el resolvedor
		sort.Strings(keys)
		out := make(MultimaterialMapping, 0, len(raw))
		for _, k := range keys {
			id, ok := raw[k].(string)
			if !ok || id == "" {
				continue
			}
			out = append(out, MaterialSlot{Slot: k, MaterialID: id})
		}
		*m = out
	}
	return nil
}

func decodeNumber(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}
