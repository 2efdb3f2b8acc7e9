package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	mock_database "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db/mocks"
)

type countRow struct {
	count int
	err   error
}

func (r countRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.count
	return nil
}

func TestInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Exec(gomock.Any(), "SELECT 1").Return(pgconn.CommandTag("SELECT 1"), nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := db.InTx(ctx, mockDB, func(tx db.Tx) error {
			_, err := tx.Exec(ctx, "SELECT 1")
			return err
		})
		assert.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		fnErr := errors.New("boom")

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := db.InTx(ctx, mockDB, func(tx db.Tx) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
	})

	t.Run("begin fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		beginErr := errors.New("pool closed")

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(nil, beginErr)

		err := db.InTx(ctx, mockDB, func(tx db.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, beginErr)
	})
}

func TestInitAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates hashed admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "admin").Return(countRow{count: 0})
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), "admin", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
				hash := args[1].(string)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
				return pgconn.CommandTag("INSERT 0 1"), nil
			})

		created, err := db.InitAdmin(ctx, mockDB, "admin", "secret")
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "admin").Return(countRow{count: 1})

		created, err := db.InitAdmin(ctx, mockDB, "admin", "secret")
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)

		_, err := db.InitAdmin(ctx, mockDB, "admin", "")
		assert.Error(t, err)
	})

	t.Run("count fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		scanErr := errors.New("relation users does not exist")

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "admin").Return(countRow{err: scanErr})

		_, err := db.InitAdmin(ctx, mockDB, "admin", "secret")
		assert.ErrorIs(t, err, scanErr)
	})
}
