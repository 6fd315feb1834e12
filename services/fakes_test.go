package services

import (
	"context"
	"errors"
	"sort"

	"steamstatus/status-bot/models"
)

var errBoom = errors.New("boom")

type fakeSteam struct {
	players map[string]models.PlayerSummary
	err     error
	calls   [][]string
}

func (f *fakeSteam) PlayerSummaries(_ context.Context, ids []string) ([]models.PlayerSummary, error) {
	f.calls = append(f.calls, append([]string(nil), ids...))
	if f.err != nil {
		return nil, f.err
	}
	var out []models.PlayerSummary
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCache struct {
	data   map[string]models.PlayerSummary
	getErr error
	putErr error
	puts   []models.PlayerSummary
}

func (f *fakeCache) Get(_ context.Context, ids []string) (map[string]models.PlayerSummary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := map[string]models.PlayerSummary{}
	for _, id := range ids {
		if p, ok := f.data[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeCache) Put(_ context.Context, summaries []models.PlayerSummary) error {
	f.puts = append(f.puts, summaries...)
	return f.putErr
}

type fakeRoster struct {
	friends map[string]string // steam id -> name
	err     error
	asked   [][]string
}

func (f *fakeRoster) Lookup(_ context.Context, names []string) (map[string]string, error) {
	f.asked = append(f.asked, names)
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]string{}
	for id, name := range f.friends {
		if len(names) == 0 {
			out[id] = name
			continue
		}
		for _, n := range names {
			if n == name {
				out[id] = name
			}
		}
	}
	return out, nil
}

type fakePoster struct {
	posts []string
	err   error
}

func (f *fakePoster) Post(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.posts = append(f.posts, text)
	return nil
}

func sortedIDs(summaries []models.PlayerSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.SteamID)
	}
	sort.Strings(ids)
	return ids
}
