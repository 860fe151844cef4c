//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS hazards (
			id uuid PRIMARY KEY,
			reporter_id uuid NOT NULL,
			type text NOT NULL,
			description text NOT NULL DEFAULT '',
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			status text NOT NULL,
			confirm_count integer NOT NULL DEFAULT 0,
			reject_count integer NOT NULL DEFAULT 0,
			created_at timestamptz NOT NULL,
			resolved_at timestamptz
		);

		CREATE TABLE IF NOT EXISTS votes (
			id uuid PRIMARY KEY,
			hazard_id uuid NOT NULL REFERENCES hazards(id) ON DELETE CASCADE,
			user_id uuid NOT NULL,
			is_truthful boolean NOT NULL,
			created_at timestamptz NOT NULL,
			UNIQUE (hazard_id, user_id)
		);

		CREATE TABLE IF NOT EXISTS sos_logs (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE votes, hazards, sos_logs`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sampleHazard() domain.Hazard {
	return domain.Hazard{
		ID:         uuid.New(),
		ReporterID: uuid.New(),
		Type:       domain.HazardNoLight,
		Lat:        40.713,
		Lng:        -74.006,
		Status:     domain.HazardPending,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestHazardArchive_Upsert_RoundTrip(t *testing.T) {

	truncateAll(t)

	repo := NewHazardArchive(testPool, testLogger())

	h := sampleHazard()
	h.Description = "broken street light"

	if err := repo.UpsertHazard(context.Background(), h); err != nil {
		t.Fatalf("UpsertHazard: %v", err)
	}

	got, err := repo.LoadHazards(context.Background())
	if err != nil {
		t.Fatalf("LoadHazards: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 hazard, got %d", len(got))
	}
	if got[0].ID != h.ID || got[0].Lat != h.Lat || got[0].Lng != h.Lng {
		t.Fatalf("round-trip mismatch: %+v", got[0])
	}
	if got[0].Status != domain.HazardPending || got[0].Description != h.Description {
		t.Fatalf("unexpected row: %+v", got[0])
	}
	if got[0].ResolvedAt != nil {
		t.Fatalf("expected nil resolved_at")
	}
}

func TestHazardArchive_Upsert_UpdatesStatusAndCounts(t *testing.T) {

	truncateAll(t)

	repo := NewHazardArchive(testPool, testLogger())

	h := sampleHazard()
	if err := repo.UpsertHazard(context.Background(), h); err != nil {
		t.Fatalf("UpsertHazard: %v", err)
	}

	resolvedAt := time.Now().UTC().Truncate(time.Microsecond)
	h.Status = domain.HazardResolved
	h.ConfirmCount = 3
	h.ResolvedAt = &resolvedAt

	if err := repo.UpsertHazard(context.Background(), h); err != nil {
		t.Fatalf("UpsertHazard update: %v", err)
	}

	got, err := repo.LoadHazards(context.Background())
	if err != nil {
		t.Fatalf("LoadHazards: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("upsert must not duplicate rows, got %d", len(got))
	}
	if got[0].Status != domain.HazardResolved || got[0].ConfirmCount != 3 {
		t.Fatalf("expected updated row, got %+v", got[0])
	}
	if got[0].ResolvedAt == nil || !got[0].ResolvedAt.Equal(resolvedAt) {
		t.Fatalf("resolved_at mismatch: %v", got[0].ResolvedAt)
	}
}

func TestHazardArchive_Upsert_InvalidInput(t *testing.T) {

	truncateAll(t)

	repo := NewHazardArchive(testPool, testLogger())

	err := repo.UpsertHazard(context.Background(), domain.Hazard{})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}

	h := sampleHazard()
	h.Lat = 91
	err = repo.UpsertHazard(context.Background(), h)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestHazardArchive_InsertVote_DuplicateIsNoop(t *testing.T) {

	truncateAll(t)

	repo := NewHazardArchive(testPool, testLogger())

	h := sampleHazard()
	if err := repo.UpsertHazard(context.Background(), h); err != nil {
		t.Fatalf("UpsertHazard: %v", err)
	}

	v := domain.Vote{
		ID:         uuid.New(),
		HazardID:   h.ID,
		VoterID:    uuid.New(),
		IsTruthful: true,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.InsertVote(context.Background(), v); err != nil {
		t.Fatalf("InsertVote: %v", err)
	}

	dup := v
	dup.ID = uuid.New()
	dup.IsTruthful = false
	if err := repo.InsertVote(context.Background(), dup); err != nil {
		t.Fatalf("InsertVote duplicate: %v", err)
	}

	votes, err := repo.LoadVotes(context.Background())
	if err != nil {
		t.Fatalf("LoadVotes: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("expected 1 vote, got %d", len(votes))
	}
	if !votes[0].IsTruthful {
		t.Fatalf("first vote must win")
	}
}

func TestHazardArchive_Delete_CascadesVotes(t *testing.T) {

	truncateAll(t)

	repo := NewHazardArchive(testPool, testLogger())

	h := sampleHazard()
	if err := repo.UpsertHazard(context.Background(), h); err != nil {
		t.Fatalf("UpsertHazard: %v", err)
	}
	v := domain.Vote{
		ID:         uuid.New(),
		HazardID:   h.ID,
		VoterID:    uuid.New(),
		IsTruthful: true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.InsertVote(context.Background(), v); err != nil {
		t.Fatalf("InsertVote: %v", err)
	}

	if err := repo.DeleteHazard(context.Background(), h.ID); err != nil {
		t.Fatalf("DeleteHazard: %v", err)
	}

	hazards, err := repo.LoadHazards(context.Background())
	if err != nil {
		t.Fatalf("LoadHazards: %v", err)
	}
	if len(hazards) != 0 {
		t.Fatalf("expected no hazards, got %d", len(hazards))
	}
	votes, err := repo.LoadVotes(context.Background())
	if err != nil {
		t.Fatalf("LoadVotes: %v", err)
	}
	if len(votes) != 0 {
		t.Fatalf("expected votes cascaded, got %d", len(votes))
	}
}

func TestHazardArchive_InsertVote_UnknownHazard(t *testing.T) {

	truncateAll(t)

	repo := NewHazardArchive(testPool, testLogger())

	v := domain.Vote{
		ID:         uuid.New(),
		HazardID:   uuid.New(),
		VoterID:    uuid.New(),
		IsTruthful: true,
		CreatedAt:  time.Now().UTC(),
	}
	err := repo.InsertVote(context.Background(), v)
	if err == nil {
		t.Fatalf("expected FK violation")
	}
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestSOSLog_Insert_SetsDefaults(t *testing.T) {

	truncateAll(t)

	repo := NewSOSLog(testPool, testLogger())

	log := domain.SOSLog{
		UserID: uuid.New(),
		Lat:    40.712,
		Lng:    -74.006,
	}
	if err := repo.Insert(context.Background(), log); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.ListAll(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 log, got %d", len(got))
	}
	if got[0].ID == uuid.Nil || got[0].Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp set: %+v", got[0])
	}
}

func TestSOSLog_Insert_InvalidLocation(t *testing.T) {

	truncateAll(t)

	repo := NewSOSLog(testPool, testLogger())

	err := repo.Insert(context.Background(), domain.SOSLog{UserID: uuid.New(), Lat: 95, Lng: 0})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}

	err = repo.Insert(context.Background(), domain.SOSLog{Lat: 10, Lng: 10})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil user, got: %v", err)
	}
}

func TestSOSLog_ListByUser_OrderAndLimit(t *testing.T) {

	truncateAll(t)

	repo := NewSOSLog(testPool, testLogger())

	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 3; i++ {
		log := domain.SOSLog{
			ID:        uuid.New(),
			UserID:    alice,
			Lat:       40.7,
			Lng:       -74.0,
			Timestamp: time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Insert(context.Background(), log); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := repo.Insert(context.Background(), domain.SOSLog{
		ID: uuid.New(), UserID: bob, Lat: 41, Lng: -75,
		Timestamp: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("Insert bob: %v", err)
	}

	got, err := repo.ListByUser(context.Background(), alice, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(got))
	}
	for _, l := range got {
		if l.UserID != alice {
			t.Fatalf("unexpected user in result: %s", l.UserID)
		}
	}
	if got[0].Timestamp.Before(got[1].Timestamp) {
		t.Fatalf("expected DESC order by created_at")
	}

	all, err := repo.ListAll(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 logs, got %d", len(all))
	}
	if all[0].UserID != bob {
		t.Fatalf("expected newest first")
	}
}
