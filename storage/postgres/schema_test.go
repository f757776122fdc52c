package postgres

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"driverapp/pkg/logger"
)

// scriptedExec records every statement and fails those listed in failOn
// (1-based call numbers).
type scriptedExec struct {
	stmts  []string
	failOn map[int]error
}

func (e *scriptedExec) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	e.stmts = append(e.stmts, sql)
	if err, ok := e.failOn[len(e.stmts)]; ok {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

type logLine struct {
	level string
	msg   string
	table string
}

type captureLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *captureLogger) record(level, msg string, fields []logger.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := logLine{level: level, msg: msg}
	for _, f := range fields {
		if f.Key == "table" {
			line.table = f.String
		}
	}
	l.lines = append(l.lines, line)
}

func (l *captureLogger) Debug(msg string, f ...logger.Field)   { l.record("debug", msg, f) }
func (l *captureLogger) Info(msg string, f ...logger.Field)    { l.record("info", msg, f) }
func (l *captureLogger) Error(msg string, f ...logger.Field)   { l.record("error", msg, f) }
func (l *captureLogger) Warning(msg string, f ...logger.Field) { l.record("warn", msg, f) }
func (l *captureLogger) With(...logger.Field) logger.ILogger   { return l }
func (l *captureLogger) Sync() error                           { return nil }

func TestTableOrder(t *testing.T) {
	want := []string{TableDrivers, TableScheduledRides, TableCustomerProfile, TableDriverNotifications}
	if diff := cmp.Diff(want, TableNames()); diff != "" {
		t.Errorf("table order mismatch:\n%s", diff)
	}
}

func TestEnsureTablesContinuesAfterFailure(t *testing.T) {
	db := &scriptedExec{failOn: map[int]error{2: errors.New("permission denied for schema public")}}
	log := &captureLogger{}

	NewSchemaRepo(db, log).EnsureTables(context.Background())

	if len(db.stmts) != len(tables) {
		t.Fatalf("executed %d statements, want %d", len(db.stmts), len(tables))
	}
	for i, tbl := range tables {
		if !strings.Contains(db.stmts[i], "CREATE TABLE IF NOT EXISTS "+tbl.name+" (") {
			t.Errorf("statement %d does not create %s:\n%s", i+1, tbl.name, db.stmts[i])
		}
	}

	want := []logLine{
		{level: "info", msg: "table is ready", table: TableDrivers},
		{level: "error", msg: "failed to create table", table: TableScheduledRides},
		{level: "info", msg: "table is ready", table: TableCustomerProfile},
		{level: "info", msg: "table is ready", table: TableDriverNotifications},
	}
	if diff := cmp.Diff(want, log.lines, cmp.AllowUnexported(logLine{})); diff != "" {
		t.Errorf("log mismatch:\n%s", diff)
	}
}

func TestDropAllResetsMigrationHistory(t *testing.T) {
	db := &scriptedExec{}
	if err := NewSchemaRepo(db, logger.NewNop()).DropAll(context.Background()); err != nil {
		t.Fatalf("DropAll: %v", err)
	}

	var want []string
	for i := len(tables) - 1; i >= 0; i-- {
		want = append(want, "DROP TABLE IF EXISTS "+tables[i].name, "DROP TABLE IF EXISTS "+migrationsTable)
	}
	if diff := cmp.Diff(want, db.stmts); diff != "" {
		t.Errorf("statements mismatch:\n%s", diff)
	}
}

func TestDropAllStopsOnFailure(t *testing.T) {
	db := &scriptedExec{failOn: map[int]error{1: errors.New("lock timeout")}}
	if err := NewSchemaRepo(db, logger.NewNop()).DropAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(db.stmts) != 1 {
		t.Errorf("executed %d statements after failure, want 1", len(db.stmts))
	}
}

func TestDropTableUnknownNeedsNoDatabase(t *testing.T) {
	db := &scriptedExec{}
	repo := NewSchemaRepo(db, logger.NewNop())
	if err := repo.DropTable(context.Background(), "users"); err == nil {
		t.Error("expected error for unmanaged table")
	}
	if len(db.stmts) != 0 {
		t.Errorf("unexpected statements: %v", db.stmts)
	}
}
