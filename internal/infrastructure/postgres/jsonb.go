package postgres

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
)

// decodeExtraCosts interpreta una columna JSONB de costos adicionales.
// Acepta un arreglo de objetos {amount, note}; un note no textual se convierte
// a texto y los elementos que no son objeto se descartan. Cualquier otra forma
// devuelve una lista vacía.
func decodeExtraCosts(raw []byte, column, rowID string) entity.ExtraCosts {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return entity.ExtraCosts{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Debug().Str("column", column).Str("id", rowID).Err(err).Msg("JSONB de costos ignorado")
		return entity.ExtraCosts{}
	}
	out := make(entity.ExtraCosts, 0, len(items))
	for _, item := range items {
		var c struct {
			Amount any `json:"amount"`
			Note   any `json:"note"`
		}
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&c); err != nil {
			continue
		}
		out = append(out, entity.ExtraCost{Amount: c.Amount, Note: noteString(c.Note)})
	}
	return out
}

func noteString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	default:
		return fmt.Sprint(n)
	}
}

// decodeMapping interpreta multimaterial_mapping; las formas inválidas quedan vacías.
func decodeMapping(raw []byte) entity.MultimaterialMapping {
	var m entity.MultimaterialMapping
	_ = m.UnmarshalJSON(raw)
	return m
}
