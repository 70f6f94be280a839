//go:build integration

package editmode_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"strata/internal/editmode"
	"strata/internal/platform/logger"
	"strata/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *editmode.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = editmode.NewRedisStore(s.redis.Client.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestMissingSessionLoadsZeroState() {
	st, err := s.store.Load(context.Background(), uuid.NewString())
	s.Require().NoError(err)
	s.Equal(editmode.State{}, st)
}

func (s *RedisStoreSuite) TestSaveLoadRoundTrip() {
	ctx := context.Background()
	id := uuid.NewString()
	want := editmode.State{EditMode: true, ShowPasswordModal: false}

	s.Require().NoError(s.store.Save(ctx, id, want))
	got, err := s.store.Load(ctx, id)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *RedisStoreSuite) TestSessionsHaveNoExpiry() {
	ctx := context.Background()
	id := uuid.NewString()
	s.Require().NoError(s.store.Save(ctx, id, editmode.State{ShowPasswordModal: true}))

	ttl, err := s.redis.Client.TTL(ctx, "strata:edit_session:"+id).Result()
	s.Require().NoError(err)
	s.Equal(int64(-1), int64(ttl))
}

func (s *RedisStoreSuite) TestManagerSharesStateAcrossInstances() {
	ctx := context.Background()
	id := uuid.NewString()
	verifier := editmode.NewPlainVerifier("life2024")
	a := editmode.NewManager(s.store, verifier, logger.Discard())
	b := editmode.NewManager(editmode.NewRedisStore(s.redis.Client.Client), verifier, logger.Discard())

	ok, _, err := a.VerifyPassword(ctx, id, "life2024")
	s.Require().NoError(err)
	s.Require().True(ok)

	st, err := b.State(ctx, id)
	s.Require().NoError(err)
	s.True(st.EditMode)
}

func (s *RedisStoreSuite) TestClientHealth() {
	s.NoError(s.redis.Client.Health(context.Background()))
}
