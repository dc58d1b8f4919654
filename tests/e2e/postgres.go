//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"guest-conversion/internal/infra/db"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/pkg/errs"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) adminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port())
}

// startPostgres は1プロセスにつき1回だけコンテナを起動する。
// 終了は testcontainers の ryuk に任せる
func startPostgres(t *testing.T) endpoint {
	t.Helper()
	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// アウトボックスだけなので耐久性は不要
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=100",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return endpoint{Host: host, Port: port}.adminDSN()
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "guest-conversion-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	return endpoint{Host: host, Port: port}
}

// createDatabase はスイートごとに専用DBを作り、マイグレーションを適用する
func createDatabase(t *testing.T, ep endpoint) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	name := "outbox_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.adminDSN())
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートが同時に CREATE DATABASE すると template1 の競合が起きる
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("データベース作成を再試行します", "attempt", attempt+1, "error", createErr)
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, ep.adminDSN())
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗しました", "database", name, "error", err)
		}
	})

	dbConfig := config.DBConfig{
		Host:     ep.Host,
		Port:     ep.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	require.NoError(t, migrate(ctx, pool), "マイグレーションに失敗")
	return pool, dbConfig
}

// migrate applies migrations/*.sql in lexical order.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	if len(files) == 0 {
		return errs.New("no migrations found")
	}
	sort.Strings(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return errs.Wrapf(err, "failed to read %s", f)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return errs.Wrapf(err, "failed to apply %s", filepath.Base(f))
		}
	}
	return nil
}

// moduleRoot walks up from the package directory to the go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errs.Wrap(err, "failed to resolve working directory")
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errs.New("go.mod not found above working directory")
		}
		dir = parent
	}
}
