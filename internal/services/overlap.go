// Overlap resolver: given a trip, find every other user with an open trip
// touching the same location on any of the same calendar days, and merge
// each member's per-day matches into one human-readable overlap range.
//
// The per-day presence rows written at trip creation make this a fan-out
// of secondary-index lookups — one per calendar day of the queried trip —
// rather than a scan. Queries run concurrently and land in per-day result
// slots, but ordering never depends on completion order: each member's
// matched rows are sorted by their day key before the range endpoints are
// taken.
package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/repo"
	"github.com/nomadland/go-trips-backend/internal/table"
	"github.com/nomadland/go-trips-backend/internal/utils"
)

// overlappingMembers resolves the members overlapping the given trip.
// The trip's own owner is never a member of their own trip.
func (s *TripService) overlappingMembers(ctx context.Context, trip domain.Trip) ([]domain.Member, error) {
	days := table.Days(trip.Start, trip.End)
	if len(days) == 0 {
		return []domain.Member{}, nil
	}

	// Fan out one index query per calendar day, fan in before proceeding.
	results := make([][]repo.Item, len(days))
	g, gctx := errgroup.WithContext(ctx)
	for i, day := range days {
		g.Go(func() error {
			rows, err := s.Store.QueryIndexPrefix(gctx, s.DB, table.TripDayKey(trip.Location, day), table.TripOpenPrefix, 0)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Flatten, drop the querying trip's own owner, and group the matched
	// presence rows per member, keeping first-seen member order.
	var order []string
	byMember := map[string][]repo.Item{}
	for _, rows := range results {
		for _, it := range rows {
			uid := table.OwnerFromPresence(it.Data)
			if uid == "" || uid == trip.UserID {
				continue
			}
			if _, seen := byMember[uid]; !seen {
				order = append(order, uid)
			}
			byMember[uid] = append(byMember[uid], it)
		}
	}

	users, err := s.Users.Members(ctx, order)
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(users))
	for _, u := range users {
		overlap, err := renderOverlap(byMember[u.ID])
		if err != nil {
			return nil, err
		}
		members = append(members, domain.Member{User: u, Overlap: overlap})
	}
	return members, nil
}

// renderOverlap formats a member's matched presence rows as a day range.
// Rows are sorted by their day key first; the day segment is a fixed-width
// date, so lexicographic order is chronological. A single matched day is
// rendered as that day alone, with the same formatting as range endpoints.
func renderOverlap(rows []repo.Item) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SK < rows[j].SK })

	first, err := table.DayFromKey(rows[0].SK)
	if err != nil {
		return "", err
	}
	if len(rows) == 1 {
		return utils.HumanDay(first), nil
	}
	last, err := table.DayFromKey(rows[len(rows)-1].SK)
	if err != nil {
		return "", err
	}
	return utils.HumanDay(first) + " - " + utils.HumanDay(last), nil
}
