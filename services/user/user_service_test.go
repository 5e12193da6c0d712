package userservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"assetdesk/models"
	"assetdesk/providers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var pqUniqueEmail = pq.Error{Code: "23505", Constraint: "users_email_key"}

func newTestService(t *testing.T, redis providers.RedisProvider) (UserService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewUserService(NewUserRepository(sqlxDB), redis), mock
}

func userRows(users ...User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "role", "created_at", "archived_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.CreatedAt, u.ArchivedAt)
	}
	return rows
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRedis := providers.NewMockRedisProvider(ctrl)

	t.Run("registers with default viewer role", func(t *testing.T) {
		svc, mock := newTestService(t, mockRedis)

		created := User{ID: uuid.New(), Email: "new.user@assetdesk.io", Role: models.ViewerRole, CreatedAt: time.Now()}
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnRows(userRows(created))

		id, err := svc.Register(ctx, RegisterReq{
			Email:     "New.User@assetdesk.io",
			Password:  "s3cret-pass",
			FirstName: "New",
			LastName:  "User",
		})
		assert.NoError(t, err)
		assert.Equal(t, created.ID, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc, mock := newTestService(t, mockRedis)

		_, err := svc.Register(ctx, RegisterReq{
			Email:    "new.user@assetdesk.io",
			Password: "s3cret-pass",
			Role:     "superuser",
		})
		assert.True(t, models.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email surfaces a conflict", func(t *testing.T) {
		svc, mock := newTestService(t, mockRedis)

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pqUniqueEmail)

		_, err := svc.Register(ctx, RegisterReq{
			Email:    "taken@assetdesk.io",
			Password: "s3cret-pass",
		})
		assert.True(t, models.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := User{
		ID:           uuid.New(),
		Email:        "known.user@assetdesk.io",
		PasswordHash: string(hash),
		Role:         models.AssetManagerRole,
		CreatedAt:    time.Now(),
	}

	t.Run("issues tokens and stores the refresh token", func(t *testing.T) {
		mockRedis := providers.NewMockRedisProvider(ctrl)
		svc, mock := newTestService(t, mockRedis)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 AND archived_at IS NULL`).
			WithArgs("known.user@assetdesk.io").
			WillReturnRows(userRows(stored))
		mockRedis.EXPECT().
			Set(gomock.Any(), "refresh_token:"+stored.ID.String(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Login(ctx, LoginReq{Email: "Known.User@assetdesk.io", Password: "s3cret-pass"})
		assert.NoError(t, err)
		assert.Equal(t, stored.ID.String(), res.UserID)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password does not leak account existence", func(t *testing.T) {
		mockRedis := providers.NewMockRedisProvider(ctrl)
		svc, mock := newTestService(t, mockRedis)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 AND archived_at IS NULL`).
			WithArgs("known.user@assetdesk.io").
			WillReturnRows(userRows(stored))

		_, err := svc.Login(ctx, LoginReq{Email: "known.user@assetdesk.io", Password: "wrong"})
		assert.True(t, models.IsValidation(err))
		assert.Contains(t, err.Error(), "invalid email or password")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email gets the same error as a bad password", func(t *testing.T) {
		mockRedis := providers.NewMockRedisProvider(ctrl)
		svc, mock := newTestService(t, mockRedis)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 AND archived_at IS NULL`).
			WithArgs("nobody@assetdesk.io").
			WillReturnError(sql.ErrNoRows)

		_, err := svc.Login(ctx, LoginReq{Email: "nobody@assetdesk.io", Password: "s3cret-pass"})
		assert.True(t, models.IsValidation(err))
		assert.Contains(t, err.Error(), "invalid email or password")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRedis := providers.NewMockRedisProvider(ctrl)

	stored := User{ID: uuid.New(), Email: "known.user@assetdesk.io", FirstName: "Known", Role: models.ViewerRole}

	t.Run("returns the profile", func(t *testing.T) {
		svc, mock := newTestService(t, mockRedis)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1 AND archived_at IS NULL`).
			WithArgs(stored.ID).
			WillReturnRows(userRows(stored))

		profile, err := svc.GetProfile(ctx, stored.ID)
		assert.NoError(t, err)
		assert.Equal(t, stored.Email, profile.Email)
		assert.Equal(t, models.ViewerRole, profile.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("archived user is not found", func(t *testing.T) {
		svc, mock := newTestService(t, mockRedis)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1 AND archived_at IS NULL`).
			WithArgs(stored.ID).
			WillReturnError(sql.ErrNoRows)

		_, err := svc.GetProfile(ctx, stored.ID)
		assert.True(t, models.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
