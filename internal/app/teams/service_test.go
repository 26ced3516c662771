package teams

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/statsapi"
)

type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newService(fetch fetcherFunc) *Service {
	logger := slog.New(slog.NewTextHandler(discard{}, nil))
	c := cache.New(cache.NewMemoryStore(), logger, nil)
	svc := New(Config{
		BaseURL:    "https://statsapi.example.com",
		ProfileTTL: 24 * time.Hour,
		RosterTTL:  6 * time.Hour,
	}, c, fetch, logger)
	svc.clock = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return payload
}

func TestListDefaultsToMLB(t *testing.T) {
	var requested string
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		requested = url
		return marshal(t, statsapi.TeamsDoc{Teams: []statsapi.TeamDetail{
			{ID: 147, Name: "New York Yankees"},
			{ID: 111, Name: "Boston Red Sox"},
		}}), nil
	})

	list, _, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(requested, "sportId=1") || !strings.Contains(requested, "season=2024") {
		t.Errorf("url = %q", requested)
	}
	if len(list) != 2 || list[0].Name != "Boston Red Sox" {
		t.Errorf("list = %+v", list)
	}

	if _, _, err := svc.List(context.Background(), 2); !errors.Is(err, ErrInvalidSportID) {
		t.Errorf("bad sport error = %v", err)
	}
}

func TestProfileNotFound(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		return marshal(t, statsapi.TeamsDoc{}), nil
	})

	if _, _, err := svc.Profile(context.Background(), 42); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("empty teams doc error = %v, want ErrTeamNotFound", err)
	}
	if _, _, err := svc.Profile(context.Background(), -1); !errors.Is(err, ErrInvalidTeamID) {
		t.Errorf("negative id error = %v", err)
	}
}

func TestProfile(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		if !strings.Contains(url, "/teams/111") {
			t.Errorf("url = %q", url)
		}
		return marshal(t, statsapi.TeamsDoc{Teams: []statsapi.TeamDetail{{
			ID: 111, Name: "Boston Red Sox", TeamName: "Red Sox", FirstYearOfPlay: "1901",
		}}}), nil
	})

	p, _, err := svc.Profile(context.Background(), 111)
	if err != nil {
		t.Fatal(err)
	}
	if p.TeamID != 111 || p.TeamName != "Red Sox" {
		t.Errorf("profile = %+v", p)
	}
}

func TestAffiliatesAndRoster(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		switch {
		case strings.Contains(url, "/affiliates"):
			return marshal(t, statsapi.TeamsDoc{Teams: []statsapi.TeamDetail{
				{ID: 533, Name: "Worcester Red Sox", Sport: &statsapi.SportRef{ID: 11, Name: "Triple-A"}},
			}}), nil
		case strings.Contains(url, "/roster"):
			return marshal(t, statsapi.RosterDoc{Roster: []statsapi.RosterSlot{{
				Person:       statsapi.RosterPerson{ID: 1, FullName: "Some Pitcher"},
				JerseyNumber: "31",
				Position:     statsapi.Position{Abbreviation: "P", Type: "Pitcher"},
			}}}), nil
		}
		t.Fatalf("unexpected url %q", url)
		return nil, nil
	})

	affiliates, _, err := svc.Affiliates(context.Background(), 111)
	if err != nil {
		t.Fatal(err)
	}
	if len(affiliates) != 1 || affiliates[0].LevelName != "Triple-A" {
		t.Errorf("affiliates = %+v", affiliates)
	}

	roster, _, err := svc.Roster(context.Background(), 111)
	if err != nil {
		t.Fatal(err)
	}
	if roster.TeamID != 111 || len(roster.Players) != 1 || roster.Players[0].Position != "P" {
		t.Errorf("roster = %+v", roster)
	}
}
