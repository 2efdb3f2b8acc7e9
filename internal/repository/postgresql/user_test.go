package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository/postgresql"
)

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row      idRow
		password string
		wantID   int64
		wantOK   bool
		wantErr  bool
	}{
		{name: "match", row: idRow{ids: []interface{}{int64(3), string(hash)}}, password: "secret", wantID: 3, wantOK: true},
		{name: "wrong password", row: idRow{ids: []interface{}{int64(3), string(hash)}}, password: "nope"},
		{name: "unknown user", row: idRow{err: pgx.ErrNoRows}, password: "secret"},
		{name: "lookup fails", row: idRow{err: errors.New("conn reset")}, password: "secret", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewUserRepo(mockDB)

			mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "cook").Return(tc.row)

			id, ok, err := repo.ValidateUser(ctx, "cook", tc.password)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
