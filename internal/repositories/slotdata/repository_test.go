package slotdata_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/pkg/clock"
	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
	"github.com/KirkDiggler/aus-world/internal/testutils"
)

var testTime = time.Date(2025, 7, 21, 12, 0, 0, 0, time.UTC)

func testRecord(player int) *slotdata.Record {
	return &slotdata.Record{
		SeedName:   "seed-1",
		Player:     player,
		PlayerName: "Egg",
		Game:       "An Untitled Story",
		Data: map[string]any{
			"gold_orbs_required": 7,
			"hard_logic":         0,
			"DeathLink":          true,
		},
	}
}

// repositoryContract runs the same behaviour checks against every backend
type repositoryContract struct {
	suite.Suite
	ctx  context.Context
	repo slotdata.Repository
}

func (s *repositoryContract) TestSaveAndGet() {
	out, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: testRecord(1)})
	s.Require().NoError(err)
	s.Equal(testTime, out.Record.CreatedAt)

	got, err := s.repo.Get(s.ctx, &slotdata.GetInput{SeedName: "seed-1", Player: 1})
	s.Require().NoError(err)
	s.Equal("Egg", got.Record.PlayerName)
	s.Equal(7, got.Record.Data["gold_orbs_required"])
	s.Equal(0, got.Record.Data["hard_logic"])
	s.Equal(true, got.Record.Data["DeathLink"])
	s.True(testTime.Equal(got.Record.CreatedAt))
}

func (s *repositoryContract) TestSaveReplaces() {
	_, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: testRecord(1)})
	s.Require().NoError(err)

	updated := testRecord(1)
	updated.Data["gold_orbs_required"] = 3
	_, err = s.repo.Save(s.ctx, &slotdata.SaveInput{Record: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &slotdata.GetInput{SeedName: "seed-1", Player: 1})
	s.Require().NoError(err)
	s.Equal(3, got.Record.Data["gold_orbs_required"])

	list, err := s.repo.List(s.ctx, &slotdata.ListInput{SeedName: "seed-1"})
	s.Require().NoError(err)
	s.Len(list.Records, 1)
}

func (s *repositoryContract) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &slotdata.GetInput{SeedName: "seed-1", Player: 4})
	s.True(errors.IsNotFound(err))
}

func (s *repositoryContract) TestListAndDelete() {
	for _, p := range []int{3, 1, 2} {
		_, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: testRecord(p)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, &slotdata.ListInput{SeedName: "seed-1"})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 3)
	for i, r := range list.Records {
		s.Equal(i+1, r.Player)
	}

	del, err := s.repo.Delete(s.ctx, &slotdata.DeleteInput{SeedName: "seed-1"})
	s.Require().NoError(err)
	s.Equal(3, del.Deleted)

	list, err = s.repo.List(s.ctx, &slotdata.ListInput{SeedName: "seed-1"})
	s.Require().NoError(err)
	s.Empty(list.Records)
}

func (s *repositoryContract) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"nil save", func() error { _, err := s.repo.Save(s.ctx, nil); return err }},
		{"nil record", func() error { _, err := s.repo.Save(s.ctx, &slotdata.SaveInput{}); return err }},
		{"missing seed", func() error {
			r := testRecord(1)
			r.SeedName = ""
			_, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: r})
			return err
		}},
		{"player zero", func() error {
			_, err := s.repo.Get(s.ctx, &slotdata.GetInput{SeedName: "seed-1"})
			return err
		}},
		{"nested value", func() error {
			r := testRecord(1)
			r.Data["locations"] = []int{1, 2}
			_, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: r})
			return err
		}},
		{"list without seed", func() error { _, err := s.repo.List(s.ctx, &slotdata.ListInput{}); return err }},
		{"delete without seed", func() error { _, err := s.repo.Delete(s.ctx, nil); return err }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

type InMemoryTestSuite struct {
	repositoryContract
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = slotdata.NewInMemory(&clock.Fixed{At: testTime})
}

func (s *InMemoryTestSuite) TestReturnsCopies() {
	out, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: testRecord(1)})
	s.Require().NoError(err)
	out.Record.Data["gold_orbs_required"] = 0

	got, err := s.repo.Get(s.ctx, &slotdata.GetInput{SeedName: "seed-1", Player: 1})
	s.Require().NoError(err)
	s.Equal(7, got.Record.Data["gold_orbs_required"])
}

type RedisTestSuite struct {
	repositoryContract
	mr *miniredis.Miniredis
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(RedisTestSuite))
}

func (s *RedisTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := slotdata.NewRedis(&slotdata.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testTime},
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisTestSuite) TestNewRedis() {
	testCases := []struct {
		name string
		cfg  *slotdata.RedisConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing client", cfg: &slotdata.RedisConfig{Clock: clock.New()}},
		{name: "negative ttl", cfg: &slotdata.RedisConfig{Clock: clock.New(), TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := slotdata.NewRedis(tc.cfg)
			s.Nil(repo)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisTestSuite) TestKeysAndTTL() {
	_, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: testRecord(2)})
	s.Require().NoError(err)

	s.True(s.mr.Exists("slot_data:seed-1:2"))
	s.Equal(time.Hour, s.mr.TTL("slot_data:seed-1:2"))

	members, err := s.mr.SMembers("slot_data:seed-1:players")
	s.Require().NoError(err)
	s.Equal([]string{"2"}, members)
}

func (s *RedisTestSuite) TestListDropsExpired() {
	for _, p := range []int{1, 2} {
		_, err := s.repo.Save(s.ctx, &slotdata.SaveInput{Record: testRecord(p)})
		s.Require().NoError(err)
	}
	s.mr.Del("slot_data:seed-1:1")

	list, err := s.repo.List(s.ctx, &slotdata.ListInput{SeedName: "seed-1"})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 1)
	s.Equal(2, list.Records[0].Player)

	members, err := s.mr.SMembers("slot_data:seed-1:players")
	s.Require().NoError(err)
	s.Equal([]string{"2"}, members)
}
