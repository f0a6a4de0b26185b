package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	domainteams "github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/store"
	"github.com/jmaliksi/blaseball-reference.com/internal/teststubs"
	"github.com/jmaliksi/blaseball-reference.com/internal/testutil"
)

func newTestPoller(stub *teststubs.StubStatsProvider) (*Poller, *store.MemoryStore) {
	memoryStore := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	p := New(stub, stub, memoryStore, logger, nil, time.Minute)
	return p, memoryStore
}

func TestRefreshWarmsStore(t *testing.T) {
	tigers := testutil.SampleTeam("t1", "hades-tigers", "Hades Tigers")
	stub := &teststubs.StubStatsProvider{
		Teams:   []domainteams.Team{tigers},
		Players: []domainplayers.Player{testutil.SamplePlayer("p1", "york-silk", "York Silk", domainteams.Team{ID: "t1"})},
		Season:  7,
	}
	p, memoryStore := newTestPoller(stub)

	p.refreshOnce(context.Background())

	if len(memoryStore.ListTeams()) != 1 {
		t.Error("teams not warmed")
	}
	player, ok := memoryStore.GetPlayerBySlug("york-silk")
	if !ok {
		t.Fatal("player not warmed")
	}
	// Teams land first so players join the full team shape.
	if player.Team.FullName != "Hades Tigers" {
		t.Errorf("team not joined: %+v", player.Team)
	}
	if memoryStore.CurrentSeason() != 7 {
		t.Errorf("season = %d, want 7", memoryStore.CurrentSeason())
	}

	status := p.Status()
	if !status.IsReady() {
		t.Errorf("expected ready after success: %+v", status)
	}
}

func TestRefreshFailureTracksStatus(t *testing.T) {
	stub := &teststubs.StubStatsProvider{Err: errors.New("datablase down")}
	p, memoryStore := newTestPoller(stub)

	p.refreshOnce(context.Background())

	if len(memoryStore.ListTeams()) != 0 {
		t.Error("store should stay empty on failure")
	}
	status := p.Status()
	if status.IsReady() {
		t.Error("should not be ready without a success")
	}
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestReadinessDegradesAfterRepeatedFailures(t *testing.T) {
	stub := &teststubs.StubStatsProvider{Season: 1}
	p, _ := newTestPoller(stub)

	p.refreshOnce(context.Background())
	if !p.Status().IsReady() {
		t.Fatal("expected ready")
	}

	stub.Err = errors.New("datablase down")
	for i := 0; i < 3; i++ {
		p.refreshOnce(context.Background())
	}
	if p.Status().IsReady() {
		t.Error("three consecutive failures should flip readiness")
	}
}

func TestStartAndStop(t *testing.T) {
	stub := &teststubs.StubStatsProvider{Season: 1}
	p, _ := newTestPoller(stub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	deadline := time.After(2 * time.Second)
	for stub.SeasonCalls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("initial refresh never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	// Stop is idempotent.
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
}
