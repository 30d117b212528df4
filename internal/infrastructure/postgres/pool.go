package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/print3d-api/pkg/config"
)

// NewPool crea el pool de conexiones hacia la base Postgres del proveedor
// (Supabase). Si DATABASE_URL está definido se usa tal cual; si no, se arma el
// DSN desde DB_HOST, DB_PORT, etc.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Forzar IPv4 en el dial: los contenedores suelen no tener IPv6 y el
	// host del proveedor puede resolver primero a AAAA.
	if cfg.ForceIPv4 {
		poolConfig.ConnConfig.DialFunc = dialIPv4
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC → shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	dialer := &net.Dialer{}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		// sin IPv4: dial normal
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ips[0].String(), port))
}

// redactDSN oculta la contraseña para poder registrar el destino.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}

// Target describe el destino de conexión sin credenciales, para logs de arranque.
func Target(cfg config.DBConfig) string {
	return redactDSN(cfg.ConnectionString())
}
