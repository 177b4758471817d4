package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"keycard/internal/domain/entity"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/domain/repository"
	"keycard/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var userColumns = []string{"id", "email", "password_record", "created_at", "updated_at"}

// newRepoWithMock opens gorm's postgres dialector over sqlmock with the same error
// translation New enables.
func newRepoWithMock(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return &userRepository{db: db, now: func() time.Time { return fixedNow }}, mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	older, newer := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`^SELECT \* FROM "users" WHERE email = \$1 ORDER BY created_at ASC,\s*id ASC`).
		WithArgs("a@b.co").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(older.String(), "a@b.co", "rec-1", fixedNow.Add(-time.Hour), fixedNow.Add(-time.Hour)).
			AddRow(newer.String(), "a@b.co", "rec-2", fixedNow, fixedNow))

	users, err := repo.FindByEmail(context.Background(), "a@b.co")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, older, users[0].ID)
	assert.Equal(t, "rec-1", users[0].PasswordRecord)
	assert.Equal(t, newer, users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NoMatches(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@b.co").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.FindByEmail(context.Background(), "nobody@b.co")

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^SELECT \* FROM "users"`).WillReturnError(errors.New("db down"))

	_, err := repo.FindByEmail(context.Background(), "a@b.co")

	require.Error(t, err)
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`^SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "a@b.co", "rec", fixedNow, fixedNow))

	user, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "a@b.co", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^SELECT \* FROM "users" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByID(context.Background(), uuid.Must(uuid.NewV7()))

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^INSERT INTO "users" \("id","email","password_record","created_at","updated_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
		WithArgs(sqlmock.AnyArg(), "a@b.co", "0123456789abcdef.hash", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repo.Create(context.Background(), "a@b.co", "0123456789abcdef.hash")

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), user.ID.Version())
	assert.Equal(t, "a@b.co", user.Email)
	assert.Equal(t, fixedNow, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	_, err := repo.Create(context.Background(), "a@b.co", "0123456789abcdef.hash")

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^INSERT INTO "users"`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), "a@b.co", "0123456789abcdef.hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	user := &entity.User{ID: uuid.Must(uuid.NewV7()), Email: "new@b.co", PasswordRecord: "rec"}

	mock.ExpectExec(`^UPDATE "users" SET "email"=\$1,"password_record"=\$2,"updated_at"=\$3 WHERE id = \$4`).
		WithArgs("new@b.co", "rec", fixedNow, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), user))

	assert.Equal(t, fixedNow, user.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_Errors(t *testing.T) {
	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock)
		want   error
	}{
		{
			name: "no rows affected",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`^UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: repository.ErrUserNotFound,
		},
		{
			name: "email taken",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`^UPDATE "users"`).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			want: domainerrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			tt.expect(mock)
			user := &entity.User{ID: uuid.Must(uuid.NewV7()), Email: "new@b.co", PasswordRecord: "rec"}

			err := repo.Update(context.Background(), user)

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, user.UpdatedAt.IsZero())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM "users"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.Must(uuid.NewV7()))

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToUserDomain(t *testing.T) {
	now := time.Now()
	row := &model.UserModel{
		ID:             uuid.New(),
		Email:          "a@b.co",
		PasswordRecord: "0123456789abcdef.hash",
		CreatedAt:      now,
		UpdatedAt:      now.Add(time.Minute),
	}

	user := toUserDomain(row)

	assert.Equal(t, row.ID, user.ID)
	assert.Equal(t, row.Email, user.Email)
	assert.Equal(t, row.PasswordRecord, user.PasswordRecord)
	assert.Equal(t, row.CreatedAt, user.CreatedAt)
	assert.Equal(t, row.UpdatedAt, user.UpdatedAt)
	assert.Nil(t, toUserDomain(nil))
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
	assert.True(t, isRecordNotFound(gorm.ErrRecordNotFound))
	assert.False(t, isRecordNotFound(errors.New("boom")))
}

func TestUserModel_TableName(t *testing.T) {
	assert.Equal(t, "users", model.UserModel{}.TableName())
}
