package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func affinityJSON(t *testing.T, days ...time.Weekday) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(weekday.FromWeekdays(days...))
	require.NoError(t, err)
	return raw
}

func TestStorage_CreateSeason(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	draft := SeasonDraft{
		ShortName:                     "spring-25",
		StartDate:                     day(time.March, 3),
		EndDate:                       day(time.March, 16),
		CookingDays:                   weekday.FromWeekdays(time.Monday, time.Wednesday),
		Holidays:                      []schedule.DateRange{{Start: day(time.March, 5), End: day(time.March, 5)}},
		ConsecutiveCookingDays:        1,
		TicketIsCancellableDaysBefore: 8,
		Prices:                        []PriceDraft{{TicketType: pricing.Adult, Price: 4000}},
		Teams: []TeamDraft{
			{Name: "Blue", Members: []MemberDraft{{InhabitantID: adultID, Role: "CHEF", AllocationPercentage: 100}}},
			{Name: "Red"},
		},
		Activate: true,
	}

	f.expectTx(1, 1)
	f.seasons.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, s *repository.Season) error {
			assert.Equal(t, "spring-25", s.ShortName)
			assert.Equal(t, fixedNow, s.CreatedAt)
			s.ID = testSeasonID
			return nil
		})
	f.prices.EXPECT().CreateBatchTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, rows []*repository.TicketPrice) error {
			require.Len(t, rows, 1)
			assert.Equal(t, testSeasonID, rows[0].SeasonID)
			return nil
		})
	f.teams.EXPECT().CreateBatchTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, rows []*repository.CookingTeam) error {
			require.Len(t, rows, 2)
			rows[0].ID, rows[1].ID = 11, 12
			return nil
		})
	f.teams.EXPECT().CreateAssignmentsTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, rows []*repository.CookingTeamAssignment) error {
			require.Len(t, rows, 1)
			assert.Equal(t, int64(11), rows[0].CookingTeamID)
			assert.Equal(t, "CHEF", rows[0].Role)
			return nil
		})
	f.events.EXPECT().CreateBatchTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, rows []*repository.DinnerEvent) error {
			require.Len(t, rows, 3)
			assert.Equal(t, day(time.March, 3), rows[0].Date)
			assert.Equal(t, day(time.March, 10), rows[1].Date)
			assert.Equal(t, day(time.March, 12), rows[2].Date)
			assert.Equal(t, repository.EventScheduled, rows[0].State)
			return nil
		})

	f.teams.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.CookingTeam{
		{ID: 11, SeasonID: testSeasonID, Name: "Blue"},
		{ID: 12, SeasonID: testSeasonID, Name: "Red"},
	}, nil)
	f.teams.EXPECT().UpdateAffinityTx(gomock.Any(), f.tx, int64(11), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, _ int64, raw json.RawMessage) error {
			assert.JSONEq(t, string(affinityJSON(t, time.Monday)), string(raw))
			return nil
		})
	f.teams.EXPECT().UpdateAffinityTx(gomock.Any(), f.tx, int64(12), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, _ int64, raw json.RawMessage) error {
			assert.JSONEq(t, string(affinityJSON(t, time.Wednesday)), string(raw))
			return nil
		})
	f.events.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.DinnerEvent{
		{ID: 1, SeasonID: testSeasonID, Date: day(time.March, 3)},
		{ID: 2, SeasonID: testSeasonID, Date: day(time.March, 10)},
		{ID: 3, SeasonID: testSeasonID, Date: day(time.March, 12)},
	}, nil)
	f.events.EXPECT().AssignTeamTx(gomock.Any(), f.tx, int64(1), int64(11)).Return(nil)
	f.events.EXPECT().AssignTeamTx(gomock.Any(), f.tx, int64(2), int64(11)).Return(nil)
	f.events.EXPECT().AssignTeamTx(gomock.Any(), f.tx, int64(3), int64(12)).Return(nil)
	f.seasons.EXPECT().ActivateTx(gomock.Any(), f.tx, testSeasonID).Return(nil)

	res, err := f.storage.CreateSeason(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, testSeasonID, res.SeasonID)
	assert.Equal(t, 3, res.CreatedEvents)
	assert.Equal(t, 2, res.AffinitiesAssigned)
	assert.Equal(t, 3, res.EventsAssigned)
}

func TestStorage_CreateSeason_Invalid(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		draft SeasonDraft
	}{
		{
			name:  "ends before it starts",
			draft: SeasonDraft{StartDate: day(time.March, 10), EndDate: day(time.March, 1), ConsecutiveCookingDays: 1},
		},
		{
			name:  "no consecutive days",
			draft: SeasonDraft{StartDate: day(time.March, 1), EndDate: day(time.March, 10)},
		},
		{
			name: "unknown ticket type",
			draft: SeasonDraft{
				StartDate: day(time.March, 1), EndDate: day(time.March, 10), ConsecutiveCookingDays: 1,
				Prices: []PriceDraft{{TicketType: "SENIOR", Price: 10}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.storage.CreateSeason(ctx, tt.draft)
			assert.ErrorIs(t, err, ErrInvalidSeason)
		})
	}
}

func TestStorage_UpdateSeason(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	priceID := int64(1)
	teamID := int64(11)

	draft := SeasonDraft{
		ShortName:              "spring-25",
		StartDate:              day(time.March, 3),
		EndDate:                day(time.March, 9),
		CookingDays:            weekday.FromWeekdays(time.Monday),
		ConsecutiveCookingDays: 1,
		Prices:                 []PriceDraft{{ID: &priceID, TicketType: pricing.Adult, Price: 4500}},
	}

	f.expectTx(1, 1)
	f.seasons.EXPECT().GetByIDTx(gomock.Any(), f.tx, testSeasonID).Return(seasonRow(), nil)
	f.seasons.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, s *repository.Season) error {
			assert.Equal(t, day(time.March, 9), s.EndDate)
			assert.Equal(t, fixedNow, s.UpdatedAt)
			return nil
		})
	f.prices.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, p *repository.TicketPrice) error {
			assert.Equal(t, priceID, p.ID)
			assert.Equal(t, 4500, p.Price)
			return nil
		})
	f.prices.EXPECT().DeleteExceptTx(gomock.Any(), f.tx, testSeasonID, []int64{priceID}).Return(nil)

	f.events.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.DinnerEvent{
		{ID: 1, SeasonID: testSeasonID, Date: day(time.March, 3), CookingTeamID: &teamID},
		{ID: 2, SeasonID: testSeasonID, Date: day(time.March, 10), CookingTeamID: &teamID},
		{ID: 3, SeasonID: testSeasonID, Date: day(time.March, 12)},
	}, nil)
	// event 2 has orders and survives
	f.events.EXPECT().DeleteUnorderedTx(gomock.Any(), f.tx, []int64{2, 3}).Return([]int64{3}, nil)

	f.teams.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.CookingTeam{
		{ID: teamID, SeasonID: testSeasonID, Name: "Blue", Affinity: affinityJSON(t, time.Monday)},
	}, nil)
	f.events.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.DinnerEvent{
		{ID: 1, SeasonID: testSeasonID, Date: day(time.March, 3), CookingTeamID: &teamID},
		{ID: 2, SeasonID: testSeasonID, Date: day(time.March, 10), CookingTeamID: &teamID},
	}, nil)

	res, err := f.storage.UpdateSeason(ctx, testSeasonID, draft)
	require.NoError(t, err)
	assert.Equal(t, 0, res.CreatedEvents)
	assert.Equal(t, []int64{3}, res.DeletedEvents)
	assert.Equal(t, []int64{2}, res.KeptEvents)
	assert.Zero(t, res.AffinitiesAssigned)
	assert.Zero(t, res.EventsAssigned)
}

func TestStorage_UpdateSeason_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectTx(1, 0)
	f.seasons.EXPECT().GetByIDTx(gomock.Any(), f.tx, int64(3)).Return(nil, repository.ErrObjectNotFound)

	_, err := f.storage.UpdateSeason(ctx, 3, SeasonDraft{StartDate: day(time.March, 1), EndDate: day(time.March, 2), ConsecutiveCookingDays: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_RebuildTeamSchedule_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	teamID := int64(11)

	f.expectTx(1, 1)
	f.seasons.EXPECT().GetByIDTx(gomock.Any(), f.tx, testSeasonID).Return(seasonRow(), nil)
	f.teams.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.CookingTeam{
		{ID: teamID, SeasonID: testSeasonID, Name: "Blue", Affinity: affinityJSON(t, time.Monday)},
	}, nil)
	f.events.EXPECT().GetBySeasonTx(gomock.Any(), f.tx, testSeasonID).Return([]*repository.DinnerEvent{
		{ID: 1, SeasonID: testSeasonID, Date: day(time.March, 3), CookingTeamID: &teamID},
	}, nil)

	res, err := f.storage.RebuildTeamSchedule(ctx, testSeasonID)
	require.NoError(t, err)
	assert.Equal(t, ScheduleResult{}, *res)
}

func TestStorage_TeamRoster(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	season := seasonRow()
	season.StartDate = day(time.March, 3)
	season.CookingDays = weekday.FromWeekdays(time.Monday, time.Wednesday)
	f.seasons.EXPECT().GetByID(gomock.Any(), testSeasonID).Return(season, nil)
	f.teams.EXPECT().GetBySeason(gomock.Any(), testSeasonID).Return([]*repository.CookingTeam{
		{ID: 11, Name: "Red", Affinity: affinityJSON(t, time.Wednesday)},
		{ID: 12, Name: "blue", Affinity: affinityJSON(t, time.Monday)},
		{ID: 13, Name: "Amber", Affinity: affinityJSON(t, time.Monday)},
		{ID: 14, Name: "Unscheduled"},
	}, nil)
	f.teams.EXPECT().GetAssignmentsBySeason(gomock.Any(), testSeasonID).Return([]*repository.CookingTeamAssignment{
		{CookingTeamID: 12, InhabitantID: adultID, Role: "CHEF", AllocationPercentage: 100},
	}, nil)

	roster, err := f.storage.TeamRoster(ctx, testSeasonID)
	require.NoError(t, err)
	require.Len(t, roster, 3)
	assert.Equal(t, []int64{13, 11, 12}, []int64{roster[0].TeamID, roster[1].TeamID, roster[2].TeamID})
	assert.Equal(t, []string{weekday.Name(time.Monday)}, roster[0].Affinity)
	require.Len(t, roster[2].Members, 1)
	assert.Equal(t, adultID, roster[2].Members[0].InhabitantID)
}

func TestDiffCalendar(t *testing.T) {
	existing := []*repository.DinnerEvent{
		{ID: 1, Date: day(time.March, 3)},
		{ID: 2, Date: day(time.March, 5)},
	}
	missing, obsolete := diffCalendar(existing, []time.Time{day(time.March, 3), day(time.March, 10)})
	assert.Equal(t, []time.Time{day(time.March, 10)}, missing)
	assert.Equal(t, []int64{2}, obsolete)

	assert.Equal(t, []int64{1, 4}, subtract([]int64{4, 2, 1}, []int64{2}))
}
