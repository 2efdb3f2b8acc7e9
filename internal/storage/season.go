package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

func validateDraft(d SeasonDraft) error {
	if d.EndDate.Before(d.StartDate) {
		return fmt.Errorf("%w: end date %s before start date %s", ErrInvalidSeason,
			d.EndDate.Format(time.DateOnly), d.StartDate.Format(time.DateOnly))
	}
	if d.ConsecutiveCookingDays < 1 {
		return fmt.Errorf("%w: consecutive cooking days must be at least 1", ErrInvalidSeason)
	}
	if d.TicketIsCancellableDaysBefore < 0 || d.DiningModeIsEditableMinutesBefore < 0 {
		return fmt.Errorf("%w: negative deadline", ErrInvalidSeason)
	}
	for _, p := range d.Prices {
		if !p.TicketType.Valid() {
			return fmt.Errorf("%w: ticket type %q", ErrInvalidSeason, p.TicketType)
		}
		if p.Price < 0 {
			return fmt.Errorf("%w: negative price for %s", ErrInvalidSeason, p.TicketType)
		}
	}
	for _, h := range d.Holidays {
		if h.End.Before(h.Start) {
			return fmt.Errorf("%w: holiday ends before it starts", ErrInvalidSeason)
		}
	}
	return nil
}

func applyDraft(season *repository.Season, d SeasonDraft) {
	season.ShortName = d.ShortName
	season.StartDate = schedule.Day(d.StartDate)
	season.EndDate = schedule.Day(d.EndDate)
	season.CookingDays = d.CookingDays
	season.Holidays = repository.Holidays(d.Holidays)
	season.ConsecutiveCookingDays = d.ConsecutiveCookingDays
	season.TicketIsCancellableDaysBefore = d.TicketIsCancellableDaysBefore
	season.DiningModeIsEditableMinutesBefore = d.DiningModeIsEditableMinutesBefore
}

func priceRow(seasonID int64, p PriceDraft) *repository.TicketPrice {
	row := &repository.TicketPrice{
		SeasonID:        seasonID,
		TicketType:      string(p.TicketType),
		Price:           p.Price,
		MaximumAgeLimit: p.MaximumAgeLimit,
		Description:     p.Description,
	}
	if p.ID != nil {
		row.ID = *p.ID
	}
	return row
}

func marshalOptional(v *weekday.Map[bool]) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// CreateSeason stores a season with its prices and teams, generates the
// dinner calendar and schedules the teams, all in one transaction.
func (s *PostgresStorage) CreateSeason(ctx context.Context, draft SeasonDraft) (*SeasonResult, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	now := s.now()
	season := &repository.Season{CreatedAt: now, UpdatedAt: now}
	applyDraft(season, draft)

	res := &SeasonResult{}
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		if err := s.seasonRepo.CreateTx(ctx, tx, season); err != nil {
			return fmt.Errorf("create season: %w", err)
		}
		res.SeasonID = season.ID

		prices := make([]*repository.TicketPrice, 0, len(draft.Prices))
		for _, p := range draft.Prices {
			prices = append(prices, priceRow(season.ID, p))
		}
		if len(prices) > 0 {
			if err := s.priceRepo.CreateBatchTx(ctx, tx, prices); err != nil {
				return fmt.Errorf("create ticket prices: %w", err)
			}
		}

		if err := s.createTeamsTx(ctx, tx, season.ID, draft.Teams); err != nil {
			return err
		}

		created, err := s.createEventsTx(ctx, tx, season, schedule.DinnerDates(season.StartDate, season.EndDate, season.CookingDays, season.Holidays))
		if err != nil {
			return err
		}
		res.CreatedEvents = created

		sched, err := s.scheduleTeamsTx(ctx, tx, season, false)
		if err != nil {
			return err
		}
		res.AffinitiesAssigned = sched.AffinitiesAssigned
		res.EventsAssigned = sched.EventsAssigned

		if draft.Activate {
			if err := s.seasonRepo.ActivateTx(ctx, tx, season.ID); err != nil {
				return fmt.Errorf("activate season %d: %w", season.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSeason(season.ID, draft.Activate)
	s.logger.Info("season created",
		zap.Int64("season_id", season.ID),
		zap.String("short_name", season.ShortName),
		zap.Int("events", res.CreatedEvents),
		zap.Bool("active", draft.Activate),
	)
	return res, nil
}

// UpdateSeason rewrites the season's settings and brings its calendar in
// line with them. Dates that dropped out of the calendar are deleted only
// when nobody ordered for them; the rest are reported as kept.
func (s *PostgresStorage) UpdateSeason(ctx context.Context, id int64, draft SeasonDraft) (*SeasonResult, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	res := &SeasonResult{SeasonID: id}
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		season, err := s.seasonRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			return notFound(err, "season %d", id)
		}
		applyDraft(season, draft)
		season.UpdatedAt = s.now()
		if err := s.seasonRepo.UpdateTx(ctx, tx, season); err != nil {
			return fmt.Errorf("update season %d: %w", id, err)
		}

		if err := s.syncPricesTx(ctx, tx, id, draft.Prices); err != nil {
			return err
		}
		if err := s.createTeamsTx(ctx, tx, id, draft.Teams); err != nil {
			return err
		}

		existing, err := s.eventRepo.GetBySeasonTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("get dinner events for season %d: %w", id, err)
		}
		wanted := schedule.DinnerDates(season.StartDate, season.EndDate, season.CookingDays, season.Holidays)
		missing, obsolete := diffCalendar(existing, wanted)

		created, err := s.createEventsTx(ctx, tx, season, missing)
		if err != nil {
			return err
		}
		res.CreatedEvents = created

		if len(obsolete) > 0 {
			deleted, err := s.eventRepo.DeleteUnorderedTx(ctx, tx, obsolete)
			if err != nil {
				return fmt.Errorf("delete obsolete dinner events: %w", err)
			}
			res.DeletedEvents = deleted
			res.KeptEvents = subtract(obsolete, deleted)
		}

		sched, err := s.scheduleTeamsTx(ctx, tx, season, draft.ResetAffinities)
		if err != nil {
			return err
		}
		res.AffinitiesAssigned = sched.AffinitiesAssigned
		res.EventsAssigned = sched.EventsAssigned

		if draft.Activate && !season.IsActive {
			if err := s.seasonRepo.ActivateTx(ctx, tx, id); err != nil {
				return fmt.Errorf("activate season %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSeason(id, draft.Activate)
	s.logger.Info("season updated",
		zap.Int64("season_id", id),
		zap.Int("created_events", res.CreatedEvents),
		zap.Int("deleted_events", len(res.DeletedEvents)),
		zap.Int("kept_events", len(res.KeptEvents)),
	)
	return res, nil
}

// RebuildTeamSchedule fills in missing team affinities and event cooking
// teams. Running it twice changes nothing the second time.
func (s *PostgresStorage) RebuildTeamSchedule(ctx context.Context, seasonID int64) (*ScheduleResult, error) {
	var res ScheduleResult
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		season, err := s.seasonRepo.GetByIDTx(ctx, tx, seasonID)
		if err != nil {
			return notFound(err, "season %d", seasonID)
		}
		res, err = s.scheduleTeamsTx(ctx, tx, season, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	if res.EventsAssigned > 0 {
		s.seasons.Invalidate(seasonID)
	}
	return &res, nil
}

// TeamRoster lists the season's teams in roster order, starting from the
// weekday of the first cooking date.
func (s *PostgresStorage) TeamRoster(ctx context.Context, seasonID int64) ([]RosterEntry, error) {
	season, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, notFound(err, "season %d", seasonID)
	}
	teamRows, err := s.teamRepo.GetBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get cooking teams for season %d: %w", seasonID, err)
	}
	assignments, err := s.teamRepo.GetAssignmentsBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get team assignments for season %d: %w", seasonID, err)
	}
	teams, err := toTeams(teamRows)
	if err != nil {
		return nil, err
	}

	startDay := time.Monday
	if first, ok := schedule.FirstCookingDate(season.StartDate, season.EndDate, season.CookingDays, season.Holidays); ok {
		startDay = first.Weekday()
	}

	members := make(map[int64][]RosterMember)
	for _, a := range assignments {
		members[a.CookingTeamID] = append(members[a.CookingTeamID], RosterMember{
			InhabitantID:         a.InhabitantID,
			Role:                 a.Role,
			AllocationPercentage: a.AllocationPercentage,
		})
	}

	roster := schedule.CreateTeamRoster(teams, startDay)
	out := make([]RosterEntry, 0, len(roster))
	for _, t := range roster {
		entry := RosterEntry{TeamID: t.ID, Name: t.Name, Members: members[t.ID]}
		for _, d := range weekday.Selected(*t.Affinity) {
			entry.Affinity = append(entry.Affinity, weekday.Name(d))
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *PostgresStorage) createTeamsTx(ctx context.Context, tx db.Tx, seasonID int64, drafts []TeamDraft) error {
	if len(drafts) == 0 {
		return nil
	}
	teams := make([]*repository.CookingTeam, 0, len(drafts))
	for _, d := range drafts {
		affinity, err := marshalOptional(d.Affinity)
		if err != nil {
			return fmt.Errorf("encode affinity of team %q: %w", d.Name, err)
		}
		teams = append(teams, &repository.CookingTeam{SeasonID: seasonID, Name: d.Name, Affinity: affinity})
	}
	if err := s.teamRepo.CreateBatchTx(ctx, tx, teams); err != nil {
		return fmt.Errorf("create cooking teams: %w", err)
	}

	var assignments []*repository.CookingTeamAssignment
	for i, d := range drafts {
		for _, m := range d.Members {
			override, err := marshalOptional(m.AffinityOverride)
			if err != nil {
				return fmt.Errorf("encode affinity override of inhabitant %d: %w", m.InhabitantID, err)
			}
			assignments = append(assignments, &repository.CookingTeamAssignment{
				CookingTeamID:        teams[i].ID,
				InhabitantID:         m.InhabitantID,
				Role:                 m.Role,
				AllocationPercentage: m.AllocationPercentage,
				AffinityOverride:     override,
			})
		}
	}
	if len(assignments) == 0 {
		return nil
	}
	if err := s.teamRepo.CreateAssignmentsTx(ctx, tx, assignments); err != nil {
		return fmt.Errorf("create team assignments: %w", err)
	}
	return nil
}

func (s *PostgresStorage) createEventsTx(ctx context.Context, tx db.Tx, season *repository.Season, dates []time.Time) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	now := s.now()
	events := make([]*repository.DinnerEvent, 0, len(dates))
	for _, d := range dates {
		events = append(events, &repository.DinnerEvent{
			SeasonID:  season.ID,
			Date:      d,
			State:     repository.EventScheduled,
			CreatedAt: now,
		})
	}
	if err := s.eventRepo.CreateBatchTx(ctx, tx, events); err != nil {
		return 0, fmt.Errorf("create dinner events: %w", err)
	}
	return len(events), nil
}

// syncPricesTx updates drafted prices that carry an id, inserts the rest and
// removes prices the draft no longer lists.
func (s *PostgresStorage) syncPricesTx(ctx context.Context, tx db.Tx, seasonID int64, drafts []PriceDraft) error {
	var keep []int64
	var fresh []*repository.TicketPrice
	for _, p := range drafts {
		row := priceRow(seasonID, p)
		if p.ID == nil {
			fresh = append(fresh, row)
			continue
		}
		if err := s.priceRepo.UpdateTx(ctx, tx, row); err != nil {
			return notFound(err, "ticket price %d", row.ID)
		}
		keep = append(keep, row.ID)
	}
	if len(fresh) > 0 {
		if err := s.priceRepo.CreateBatchTx(ctx, tx, fresh); err != nil {
			return fmt.Errorf("create ticket prices: %w", err)
		}
		for _, p := range fresh {
			keep = append(keep, p.ID)
		}
	}
	if err := s.priceRepo.DeleteExceptTx(ctx, tx, seasonID, keep); err != nil {
		return fmt.Errorf("delete stale ticket prices: %w", err)
	}
	return nil
}

func (s *PostgresStorage) scheduleTeamsTx(ctx context.Context, tx db.Tx, season *repository.Season, reset bool) (ScheduleResult, error) {
	var res ScheduleResult

	first, ok := schedule.FirstCookingDate(season.StartDate, season.EndDate, season.CookingDays, season.Holidays)
	if !ok {
		return res, nil
	}

	teamRows, err := s.teamRepo.GetBySeasonTx(ctx, tx, season.ID)
	if err != nil {
		return res, fmt.Errorf("get cooking teams for season %d: %w", season.ID, err)
	}
	stored, err := toTeams(teamRows)
	if err != nil {
		return res, err
	}
	teams := make([]schedule.Team, len(stored))
	copy(teams, stored)
	if reset {
		for i := range teams {
			teams[i].Affinity = nil
		}
	}

	teams = schedule.AssignAffinities(teams, season.CookingDays, season.ConsecutiveCookingDays, first)
	for i, t := range teams {
		if t.Affinity == nil {
			continue
		}
		if stored[i].Affinity != nil && weekday.Equal(*stored[i].Affinity, *t.Affinity) {
			continue
		}
		raw, err := json.Marshal(t.Affinity)
		if err != nil {
			return res, fmt.Errorf("encode affinity of team %d: %w", t.ID, err)
		}
		if err := s.teamRepo.UpdateAffinityTx(ctx, tx, t.ID, raw); err != nil {
			return res, fmt.Errorf("update affinity of team %d: %w", t.ID, err)
		}
		res.AffinitiesAssigned++
	}

	eventRows, err := s.eventRepo.GetBySeasonTx(ctx, tx, season.ID)
	if err != nil {
		return res, fmt.Errorf("get dinner events for season %d: %w", season.ID, err)
	}
	before := toScheduleEvents(eventRows)
	after := schedule.AssignTeamsToEvents(before, teams, first)
	for i, ev := range after {
		if before[i].CookingTeamID != nil || ev.CookingTeamID == nil {
			continue
		}
		if err := s.eventRepo.AssignTeamTx(ctx, tx, ev.ID, *ev.CookingTeamID); err != nil {
			return res, fmt.Errorf("assign team to dinner event %d: %w", ev.ID, err)
		}
		res.EventsAssigned++
	}
	return res, nil
}

func (s *PostgresStorage) invalidateSeason(id int64, activated bool) {
	if activated {
		s.seasons.InvalidateAll()
		return
	}
	s.seasons.Invalidate(id)
}

// diffCalendar returns the dates with no event yet and the ids of events
// whose date is no longer wanted.
func diffCalendar(existing []*repository.DinnerEvent, wanted []time.Time) ([]time.Time, []int64) {
	have := make(map[string]bool, len(existing))
	for _, e := range existing {
		have[e.Date.Format(time.DateOnly)] = true
	}
	want := make(map[string]bool, len(wanted))
	var missing []time.Time
	for _, d := range wanted {
		key := d.Format(time.DateOnly)
		want[key] = true
		if !have[key] {
			missing = append(missing, d)
		}
	}
	var obsolete []int64
	for _, e := range existing {
		if !want[e.Date.Format(time.DateOnly)] {
			obsolete = append(obsolete, e.ID)
		}
	}
	return missing, obsolete
}

func subtract(all, removed []int64) []int64 {
	gone := make(map[int64]bool, len(removed))
	for _, id := range removed {
		gone[id] = true
	}
	var out []int64
	for _, id := range all {
		if !gone[id] {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
