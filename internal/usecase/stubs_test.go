package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/fixture"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/matchup"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
)

type stubProvider struct {
	mu            sync.Mutex
	fixtures      map[int][]fixture.Fixture
	stats         map[string]scoring.MatchStats
	listErr       error
	statsErr      error
	listCalls     int
	listIDCalls   int
	statsRequests []string
}

func statKey(fixtureID, playerRefID int64) string {
	return fmt.Sprintf("%d:%d", fixtureID, playerRefID)
}

func (s *stubProvider) ListFixtures(_ context.Context, round int) ([]fixture.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.fixtures[round], nil
}

func (s *stubProvider) ListFixtureIDs(_ context.Context, round int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listIDCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	ids := make([]int64, 0, len(s.fixtures[round]))
	for _, item := range s.fixtures[round] {
		ids = append(ids, item.ExternalID)
	}
	return ids, nil
}

func (s *stubProvider) FetchPlayerStats(_ context.Context, fixtureID, playerRefID int64) (scoring.MatchStats, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsRequests = append(s.statsRequests, statKey(fixtureID, playerRefID))
	if s.statsErr != nil {
		return scoring.MatchStats{}, false, s.statsErr
	}
	stats, ok := s.stats[statKey(fixtureID, playerRefID)]
	return stats, ok, nil
}

type stubGameweekRepository struct {
	mu        sync.Mutex
	weeks     []gameweek.Gameweek
	wentLive  []int
	closed    []int
	goLiveErr error
	closeErr  error
}

func (s *stubGameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]gameweek.Gameweek(nil), s.weeks...), nil
}

func (s *stubGameweekRepository) ListByStatus(_ context.Context, status string) ([]gameweek.Gameweek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gameweek.Gameweek, 0, len(s.weeks))
	for _, gw := range s.weeks {
		if gameweek.NormalizeStatus(gw.Status) == gameweek.NormalizeStatus(status) {
			out = append(out, gw)
		}
	}
	return out, nil
}

func (s *stubGameweekRepository) GoLive(_ context.Context, week int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.goLiveErr != nil {
		return s.goLiveErr
	}
	s.wentLive = append(s.wentLive, week)
	for i, gw := range s.weeks {
		if gw.Week == week && gw.IsUpcoming() {
			s.weeks[i].Status = gameweek.StatusLive
		}
	}
	return nil
}

func (s *stubGameweekRepository) CloseWeek(_ context.Context, week int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closeErr != nil {
		return s.closeErr
	}
	s.closed = append(s.closed, week)
	for i, gw := range s.weeks {
		if gw.Week == week && gw.IsLive() {
			s.weeks[i].Status = gameweek.StatusComplete
		}
	}
	return nil
}

type stubPlayerRepository struct {
	players []player.Player
}

func (s *stubPlayerRepository) GetByIDs(_ context.Context, ids []string) ([]player.Player, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]player.Player, 0, len(ids))
	for _, item := range s.players {
		if _, ok := want[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) ListByClubRefIDs(_ context.Context, clubRefIDs []int64) ([]player.Player, error) {
	want := make(map[int64]struct{}, len(clubRefIDs))
	for _, id := range clubRefIDs {
		want[id] = struct{}{}
	}
	out := make([]player.Player, 0, len(s.players))
	for _, item := range s.players {
		if _, ok := want[item.ClubRefID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubRosterRepository struct {
	mu          sync.Mutex
	assignments []roster.Assignment
	lockCalls   int
}

func (s *stubRosterRepository) ListByTeamAndWeek(_ context.Context, teamID string, week int) ([]roster.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Assignment, 0, len(s.assignments))
	for _, item := range s.assignments {
		if item.TeamID == teamID && item.Week == week {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubRosterRepository) LockPlayers(_ context.Context, week int, playerIDs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockCalls++
	want := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		want[id] = struct{}{}
	}
	flipped := 0
	for i, item := range s.assignments {
		if item.Week != week || item.Locked {
			continue
		}
		if _, ok := want[item.PlayerID]; ok {
			s.assignments[i].Locked = true
			flipped++
		}
	}
	return flipped, nil
}

type stubPointsRepository struct {
	mu   sync.Mutex
	rows map[string]scoring.PlayerLivePoints
}

func pointsKey(teamID, playerID string, week int) string {
	return fmt.Sprintf("%s:%s:%d", teamID, playerID, week)
}

func (s *stubPointsRepository) UpsertBatch(_ context.Context, rows []scoring.PlayerLivePoints) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows == nil {
		s.rows = make(map[string]scoring.PlayerLivePoints)
	}
	for _, row := range rows {
		s.rows[pointsKey(row.TeamID, row.PlayerID, row.Week)] = row
	}
	return nil
}

func (s *stubPointsRepository) ListByTeamAndWeek(_ context.Context, teamID string, week int) ([]scoring.PlayerLivePoints, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scoring.PlayerLivePoints, 0, len(s.rows))
	for _, row := range s.rows {
		if row.TeamID == teamID && row.Week == week {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubMatchupRepository struct {
	mu       sync.Mutex
	matchups []matchup.Matchup
	scores   map[string][2]float64
}

func (s *stubMatchupRepository) ListActiveByWeek(_ context.Context, week int) ([]matchup.Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]matchup.Matchup, 0, len(s.matchups))
	for _, item := range s.matchups {
		if item.Week == week && !item.IsComplete() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMatchupRepository) UpdateScores(_ context.Context, id string, team1Score, team2Score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scores == nil {
		s.scores = make(map[string][2]float64)
	}
	s.scores[id] = [2]float64{team1Score, team2Score}
	return nil
}

type stubLocker struct {
	mu    sync.Mutex
	weeks []int
	err   error
}

func (s *stubLocker) LockStartedPlayers(_ context.Context, week int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.weeks = append(s.weeks, week)
	return 0, nil
}
