package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/print3d-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, time.UTC, cfg.Analytics.Location)
	assert.Equal(t, "0.6", cfg.Analytics.Split.ProducerRatio.String())
	assert.Equal(t, "0.4", cfg.Analytics.Split.SellerRatio.String())
	assert.Equal(t, "authenticated", cfg.Auth.Audience)
	assert.Equal(t, []string{"authenticated", "service_role"}, cfg.Auth.AllowedRoles)

	names := []string{}
	for _, c := range cfg.Analytics.Channels.Channels() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Etsy", "eBay", "Direct"}, names)
}

func TestLoad_OverridesDeCanalesYReparto(t *testing.T) {
	t.Setenv("ANALYTICS_CHANNELS_JSON", `[{"name":"etsy","fee_percent":"5"},{"name":"Feria","fixed_fee":2}]`)
	t.Setenv("ANALYTICS_PRODUCER_RATIO", "0.5")
	t.Setenv("ANALYTICS_SELLER_RATIO", "0.5")
	t.Setenv("ANALYTICS_TIMEZONE", "Europe/Madrid")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_ALLOWED_ROLES", "*")

	cfg, err := config.Load()
	require.NoError(t, err)

	etsy, ok := cfg.Analytics.Channels.Lookup("Etsy")
	require.True(t, ok)
	assert.Equal(t, "5", etsy.FeePercent.String())
	assert.True(t, etsy.FixedFee.IsZero(), "el override reemplaza el canal completo")

	feria, ok := cfg.Analytics.Channels.Lookup("feria")
	require.True(t, ok)
	assert.Equal(t, "2", feria.FixedFee.String())
	assert.Len(t, cfg.Analytics.Channels.Channels(), 4)

	assert.Equal(t, "0.5", cfg.Analytics.Split.ProducerRatio.String())
	assert.Equal(t, "Europe/Madrid", cfg.Analytics.Location.String())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Empty(t, cfg.Auth.AllowedRoles)
}

func TestLoad_ValoresInvalidosFallan(t *testing.T) {
	cases := map[string]string{
		"ANALYTICS_TIMEZONE":       "Marte/Olympus",
		"ANALYTICS_PRODUCER_RATIO": "sesenta",
		"ANALYTICS_SELLER_RATIO":   "-0.4",
		"ANALYTICS_CHANNELS_JSON":  `{"name":"Etsy"}`,
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "x", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/x?sslmode=require", c.ConnectionString())

	c.DatabaseURL = "postgresql://otro"
	assert.Equal(t, "postgresql://otro", c.ConnectionString())
}
