package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
)

func TestHistoryRepo_CreateBatchTx(t *testing.T) {
	ctx := context.Background()
	orderID := int64(5)
	entry := func() *repository.OrderHistory {
		return &repository.OrderHistory{
			OrderID:       &orderID,
			InhabitantID:  1,
			DinnerEventID: 2,
			SeasonID:      3,
			Action:        "USER_BOOKED",
			Snapshot:      json.RawMessage(`{"version":2,"order":{"dinnerMode":"DINEIN"}}`),
			CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewHistoryRepo(mock_database.NewMockDB(ctrl))

		e := entry()
		mockTx.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Eq(e.OrderID),
				gomock.Eq(e.InhabitantID),
				gomock.Eq(e.DinnerEventID),
				gomock.Eq(e.SeasonID),
				gomock.Eq(e.Action),
				gomock.Eq([]byte(e.Snapshot)),
				gomock.Eq(e.CreatedAt)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*[]int64) = []int64{77}
				return nil
			})

		err := repo.CreateBatchTx(ctx, mockTx, []*repository.OrderHistory{e})
		require.NoError(t, err)
		assert.Equal(t, int64(77), e.ID)
	})

	t.Run("DB Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewHistoryRepo(mock_database.NewMockDB(ctrl))

		dbErr := errors.New("database error")
		mockTx.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dbErr)

		err := repo.CreateBatchTx(ctx, mockTx, []*repository.OrderHistory{entry()})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestHistoryRepo_GetByKey(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := NewHistoryRepo(mockDB)

	rows := []*repository.OrderHistory{{ID: 1, Action: "SYSTEM_CREATED"}, {ID: 2, Action: "USER_CANCELLED"}}
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), int64(2)).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*dest.(*[]*repository.OrderHistory) = rows
			return nil
		})

	got, err := repo.GetByKey(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
