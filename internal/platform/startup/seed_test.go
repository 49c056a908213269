package startup

import (
	"context"
	"testing"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/config"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/database"
	"github.com/SlpAus/skillswap-connect-backend/internal/platform/metadata"
)

type counts struct {
	Users, Thanks, Holdings, Badges, Sessions int
}

func snapshot(t *testing.T, stores *Stores) counts {
	t.Helper()
	ctx := context.Background()

	users, err := stores.Users.List(ctx)
	if err != nil {
		t.Fatalf("List users failed: %v", err)
	}
	thanks, err := stores.Thanks.List(ctx)
	if err != nil {
		t.Fatalf("List thanks failed: %v", err)
	}
	holdings, err := stores.Badges.Holdings(ctx)
	if err != nil {
		t.Fatalf("Holdings failed: %v", err)
	}
	badges := 0
	for _, h := range holdings {
		badges += len(h.Badges)
	}
	demo, err := stores.Users.Login(ctx, "demo")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	sessions, err := stores.Sessions.ListForUser(ctx, demo.UUID, stores.Users)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	return counts{len(users), len(thanks), len(holdings), badges, len(sessions)}
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	db, err := database.Open(config.SqliteConfig{DSN: database.MemoryDSN()}, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	stores, err := InitializeApplication(context.Background(), db, true)
	if err != nil {
		t.Fatalf("InitializeApplication failed: %v", err)
	}
	first := snapshot(t, stores)
	expected := counts{Users: 5, Thanks: 2, Holdings: 5, Badges: 8, Sessions: 1}
	if first != expected {
		t.Fatalf("unexpected seed: got %+v want %+v", first, expected)
	}

	if err := SeedDemo(context.Background(), db, stores); err != nil {
		t.Fatalf("second SeedDemo failed: %v", err)
	}
	if second := snapshot(t, stores); second != first {
		t.Errorf("seeding twice changed the data: %+v -> %+v", first, second)
	}

	runs, err := metadata.GetValue(context.Background(), db, metadata.DemoSeedRunsKey)
	if err != nil || runs != "2" {
		t.Errorf("expected two recorded seed runs, got (%q, %v)", runs, err)
	}
	seededAt, err := metadata.GetTime(context.Background(), db, metadata.DemoSeededAtKey)
	if err != nil || seededAt.IsZero() {
		t.Errorf("expected seed time to be recorded, got (%v, %v)", seededAt, err)
	}
}

func TestSeedDemoSessionIsAccepted(t *testing.T) {
	db, err := database.Open(config.SqliteConfig{DSN: database.MemoryDSN()}, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	stores, err := InitializeApplication(context.Background(), db, true)
	if err != nil {
		t.Fatalf("InitializeApplication failed: %v", err)
	}
	ctx := context.Background()
	alex, _ := stores.Users.Login(ctx, "alex")
	sessions, err := stores.Sessions.ListForUser(ctx, alex.UUID, stores.Users)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("expected one seeded session, got %v (%v)", sessions, err)
	}
	s := sessions[0]
	if s.FromName != "demo" || s.ToName != "alex" || s.Skill != "Guitar" || s.Status != "accepted" {
		t.Errorf("unexpected seeded session %+v", s)
	}
}

func TestInitializeWithoutSeed(t *testing.T) {
	db, err := database.Open(config.SqliteConfig{DSN: database.MemoryDSN()}, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	stores, err := InitializeApplication(context.Background(), db, false)
	if err != nil {
		t.Fatalf("InitializeApplication failed: %v", err)
	}
	users, _ := stores.Users.List(context.Background())
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
}
