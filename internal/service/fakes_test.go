package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

type fakeTeamRepo struct {
	items     map[string]model.Team
	createErr error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{items: map[string]model.Team{}}
}

func (f *fakeTeamRepo) Create(_ context.Context, t model.Team) (model.Team, error) {
	if f.createErr != nil {
		return model.Team{}, f.createErr
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	f.items[t.ID] = t
	return t, nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (model.Team, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeTeamRepo) ReplaceRoster(_ context.Context, teamID string, players []model.Player) (model.Team, error) {
	it, ok := f.items[teamID]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	it.Players = players
	f.items[teamID] = it
	return it, nil
}

func (f *fakeTeamRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

var _ repository.TeamRepository = (*fakeTeamRepo)(nil)

type fakeMatchRepo struct {
	items     []model.MatchSummary // newest first
	createErr error
	listErr   error
	lastPage  repository.Page // capture last page for pagination normalization tests
}

func newFakeMatchRepo() *fakeMatchRepo { return &fakeMatchRepo{} }

func (f *fakeMatchRepo) Create(_ context.Context, m model.MatchSummary) (model.MatchSummary, error) {
	if f.createErr != nil {
		return model.MatchSummary{}, f.createErr
	}
	f.items = append([]model.MatchSummary{m}, f.items...)
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id string) (model.MatchSummary, error) {
	for _, m := range f.items {
		if m.ID == id {
			return m, nil
		}
	}
	return model.MatchSummary{}, repository.ErrNotFound
}

func (f *fakeMatchRepo) ListByTeam(_ context.Context, teamID string, p repository.Page) (repository.PageResult[model.MatchSummary], error) {
	f.lastPage = p
	var res repository.PageResult[model.MatchSummary]
	for _, m := range f.items {
		if m.TeamID == teamID {
			res.Items = append(res.Items, m)
		}
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakeMatchRepo) ListAllByTeam(_ context.Context, teamID string) ([]model.MatchSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.MatchSummary
	for _, m := range f.items {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) Delete(_ context.Context, id string) error {
	for i, m := range f.items {
		if m.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

// fakeTx just runs the function; transactional behavior is covered by the
// storage contract suites.
type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error { return fn(ctx) }

var _ repository.TxManager = fakeTx{}
