package items_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	redisclient "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
)

type RedisFailureTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo items.Repository
	ctx  context.Context
}

func TestRedisFailureSuite(t *testing.T) {
	suite.Run(t, new(RedisFailureTestSuite))
}

func (s *RedisFailureTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.ctx = context.Background()

	repo, err := items.NewRedis(&items.RedisConfig{Client: client, Clock: testutils.FixedClock()})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisFailureTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisFailureTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *items.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &items.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := items.NewRedis(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisFailureTestSuite) TestCreateSequenceFailure() {
	s.mock.ExpectIncr(redisclient.ItemSequenceKey).SetErr(fmt.Errorf("connection refused"))

	_, err := s.repo.Create(s.ctx, items.CreateInput{Item: testutils.NewWeapon("Dunkelklinge")})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisFailureTestSuite) TestGetFailureIsInternal() {
	s.mock.ExpectGet(redisclient.ItemKey(5)).SetErr(fmt.Errorf("i/o timeout"))

	_, err := s.repo.Get(s.ctx, items.GetInput{ID: 5})
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestGetMissingIsNotFound() {
	s.mock.ExpectGet(redisclient.ItemKey(5)).RedisNil()

	_, err := s.repo.Get(s.ctx, items.GetInput{ID: 5})
	s.True(errors.IsNotFound(err))
}

func (s *RedisFailureTestSuite) TestGetCorruptRecord() {
	s.mock.ExpectGet(redisclient.ItemKey(5)).SetVal("{not json")

	_, err := s.repo.Get(s.ctx, items.GetInput{ID: 5})
	s.True(errors.IsInternal(err))
}

func (s *RedisFailureTestSuite) TestListFailure() {
	s.mock.ExpectZRange(redisclient.ItemsAllKey, 0, -1).SetErr(fmt.Errorf("LOADING"))

	_, err := s.repo.List(s.ctx, items.ListInput{})
	s.True(errors.IsInternal(err))
}
