package redis_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	cache     redis.Cache
}

func (suite *RedisCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = goredis.NewClient(&goredis.Options{Addr: endpoint})
	suite.cache = redis.NewRedisCache(suite.client, "shop")
}

func (suite *RedisCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *RedisCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisCacheIntegrationTestSuite) TestGenerateKey() {
	suite.Equal("shop:users:admins", suite.cache.GenerateKey("users", "admins"))
}

func (suite *RedisCacheIntegrationTestSuite) TestGet_Miss_ReturnsEmpty() {
	value, err := suite.cache.Get(suite.T().Context(), "shop:users:nobody")

	suite.Require().NoError(err)
	suite.Empty(value)
}

func (suite *RedisCacheIntegrationTestSuite) TestSetGet_RoundTripWithTTL() {
	ctx := suite.T().Context()

	suite.Require().NoError(suite.cache.Set(ctx, "shop:users:admins", `[{"id":"x"}]`, time.Minute))

	value, err := suite.cache.Get(ctx, "shop:users:admins")
	suite.Require().NoError(err)
	suite.JSONEq(`[{"id":"x"}]`, value)

	ttl, err := suite.client.TTL(ctx, "shop:users:admins").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Minute)
}

func TestRedisCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheIntegrationTestSuite))
}
