package sales

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/print3d-api/internal/domain/entity"
	"github.com/jhoicas/print3d-api/internal/domain/money"
)

var hundred = decimal.NewFromInt(100)

// ChannelConfig costos por defecto de un canal de venta.
type ChannelConfig struct {
	Name       string          `json:"name"`
	FeePercent decimal.Decimal `json:"fee_percent"` // comisión % sobre ingresos
	FixedFee   decimal.Decimal `json:"fixed_fee"`   // cargo fijo por unidad vendida
}

// ChannelSettings configuración de canales ya combinada con los valores por
// defecto. Es inmutable: se construye una vez al cargar la configuración.
type ChannelSettings struct {
	channels []ChannelConfig
}

// NewChannelSettings combina defaults y overrides por nombre (sin distinguir
// mayúsculas). Un override reemplaza al default homónimo; los nuevos se
// agregan al final en el orden recibido. Las entradas sin nombre se ignoran.
func NewChannelSettings(defaults, overrides []ChannelConfig) ChannelSettings {
	merged := make([]ChannelConfig, 0, len(defaults)+len(overrides))
	index := make(map[string]int, len(defaults)+len(overrides))

	add := func(c ChannelConfig) {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return
		}
		key := strings.ToLower(c.Name)
		if i, ok := index[key]; ok {
			merged[i] = c
			return
		}
		index[key] = len(merged)
		merged = append(merged, c)
	}
	for _, c := range defaults {
		add(c)
	}
	for _, c := range overrides {
		add(c)
	}
	return ChannelSettings{channels: merged}
}

// Channels copia de los canales configurados, en orden.
func (s ChannelSettings) Channels() []ChannelConfig {
	out := make([]ChannelConfig, len(s.channels))
	copy(out, s.channels)
	return out
}

// Lookup busca un canal por nombre sin distinguir mayúsculas.
func (s ChannelSettings) Lookup(name string) (ChannelConfig, bool) {
	name = strings.TrimSpace(name)
	for _, c := range s.channels {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ChannelConfig{}, false
}

// ChannelSummary totales de un canal en el período con la comisión estimada.
type ChannelSummary struct {
	Channel       string
	Configured    bool
	Count         decimal.Decimal
	Revenue       decimal.Decimal
	Profit        decimal.Decimal
	EstimatedFees decimal.Decimal // Revenue × FeePercent/100 + FixedFee × Count
}

// SummarizeChannels agrupa las ventas por canal. Los canales configurados
// aparecen siempre (en cero si no tuvieron ventas) y en su orden; los canales
// observados sin configuración van después en orden alfabético.
func SummarizeChannels(records []entity.SaleRecord, settings ChannelSettings) []ChannelSummary {
	byKey := make(map[string]*ChannelSummary)
	order := make([]string, 0)

	for _, c := range settings.channels {
		key := strings.ToLower(c.Name)
		byKey[key] = newSummary(c.Name, true)
		order = append(order, key)
	}

	var extra []string
	for _, s := range records {
		label := ChannelLabel(s)
		key := strings.ToLower(label)
		sum, ok := byKey[key]
		if !ok {
			sum = newSummary(label, false)
			byKey[key] = sum
			extra = append(extra, key)
		}
		sum.Count = sum.Count.Add(s.Quantity())
		sum.Revenue = sum.Revenue.Add(money.Normalize(s.Revenue))
		sum.Profit = sum.Profit.Add(money.Normalize(s.Profit))
	}
	sort.Strings(extra)
	order = append(order, extra...)

	out := make([]ChannelSummary, 0, len(order))
	for _, key := range order {
		sum := byKey[key]
		if cfg, ok := settings.Lookup(sum.Channel); ok {
			sum.EstimatedFees = sum.Revenue.Mul(cfg.FeePercent).Div(hundred).
				Add(cfg.FixedFee.Mul(sum.Count))
		}
		out = append(out, *sum)
	}
	return out
}

func newSummary(name string, configured bool) *ChannelSummary {
	return &ChannelSummary{
		Channel:       name,
		Configured:    configured,
		Count:         decimal.Zero,
		Revenue:       decimal.Zero,
		Profit:        decimal.Zero,
		EstimatedFees: decimal.Zero,
	}
}
