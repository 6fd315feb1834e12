package services

import (
	"context"
	"sort"

	"steamstatus/status-bot/models"
	"steamstatus/status-bot/utils"
)

type SummaryFetcher interface {
	PlayerSummaries(ctx context.Context, ids []string) ([]models.PlayerSummary, error)
}

type SummaryCache interface {
	Get(ctx context.Context, ids []string) (map[string]models.PlayerSummary, error)
	Put(ctx context.Context, summaries []models.PlayerSummary) error
}

// PresenceService resolves roster entries into presence records, reading
// through the cache when one is configured.
type PresenceService struct {
	steam  SummaryFetcher
	cache  SummaryCache
	logger *utils.Logger
}

// NewPresenceService creates the service; cache may be nil.
func NewPresenceService(steam SummaryFetcher, cache SummaryCache, logger *utils.Logger) *PresenceService {
	return &PresenceService{
		steam:  steam,
		cache:  cache,
		logger: logger,
	}
}

// Lookup returns a record for every roster entry Steam knows about, ordered by
// Steam id. roster maps steam id to display name.
func (ps *PresenceService) Lookup(ctx context.Context, roster map[string]string) ([]models.PresenceRecord, error) {
	ids := make([]string, 0, len(roster))
	for id := range roster {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	summaries, err := ps.summaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	records := make([]models.PresenceRecord, 0, len(ids))
	for _, id := range ids {
		summary, ok := summaries[id]
		if !ok {
			ps.logger.Warn("No presence returned for roster player", "steam_id", id, "name", roster[id])
			continue
		}
		rec, err := models.NewPresenceRecord(summary, roster[id])
		if err != nil {
			ps.logger.Warn("Skipping player with unreadable presence", "steam_id", id, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (ps *PresenceService) summaries(ctx context.Context, ids []string) (map[string]models.PlayerSummary, error) {
	found := make(map[string]models.PlayerSummary, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	missing := ids
	if ps.cache != nil {
		cached, err := ps.cache.Get(ctx, ids)
		if err != nil {
			ps.logger.Warn("Presence cache unavailable", "error", err)
		} else {
			for id, summary := range cached {
				found[id] = summary
			}
			missing = nil
			for _, id := range ids {
				if _, ok := found[id]; !ok {
					missing = append(missing, id)
				}
			}
		}
	}

	if len(missing) == 0 {
		return found, nil
	}

	fetched, err := ps.steam.PlayerSummaries(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, s := range fetched {
		found[s.SteamID] = s
	}

	if ps.cache != nil {
		if err := ps.cache.Put(ctx, fetched); err != nil {
			ps.logger.Warn("Failed to cache presence", "error", err)
		}
	}
	return found, nil
}
