package providers

import (
	"context"
	"net/http"
	"time"

	"assetdesk/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate mockgen -source=providers.go -destination=mock_providers.go -package=providers

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetUserAndRolesFromContext(r *http.Request) (string, []string, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}
