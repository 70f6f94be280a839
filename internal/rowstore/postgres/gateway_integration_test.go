//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"strata/internal/rowstore"
	"strata/internal/rowstore/postgres"
	"strata/pkg/testutil/containers"
)

type GatewaySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	gateway  *postgres.Gateway
}

func TestGatewaySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GatewaySuite))
}

func (s *GatewaySuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.gateway = postgres.New(s.postgres.DB)
}

func (s *GatewaySuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		rowstore.TableEvents, rowstore.TableThoughts, rowstore.TableComments)
	s.Require().NoError(err)
}

func (s *GatewaySuite) TestInsertAssignsIDAndCreatedAt() {
	row, err := s.gateway.Insert(context.Background(), rowstore.TableEvents, rowstore.Row{
		"title":      "Moved to Lisbon",
		"start_year": 2019,
		"category":   "exploration",
		"images":     []string{"a.jpg", "b.jpg"},
	})
	s.Require().NoError(err)

	_, parseErr := uuid.Parse(row["id"].(string))
	s.NoError(parseErr)
	s.NotEmpty(row["created_at"])
	s.Equal(float64(2019), row["start_year"])
	s.Equal([]any{"a.jpg", "b.jpg"}, row["images"])
	s.Nil(row["end_year"])
}

func (s *GatewaySuite) TestSelectFiltersAndOrders() {
	ctx := context.Background()
	thought := uuid.NewString()
	other := uuid.NewString()
	for _, r := range []rowstore.Row{
		{"thought_id": thought, "content": "first", "is_public": true},
		{"thought_id": thought, "content": "hidden", "is_public": false},
		{"thought_id": other, "content": "elsewhere", "is_public": true},
		{"thought_id": thought, "content": "second", "is_public": true},
	} {
		_, err := s.gateway.Insert(ctx, rowstore.TableComments, r)
		s.Require().NoError(err)
	}

	rows, err := s.gateway.Select(ctx, rowstore.TableComments, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq("thought_id", thought), rowstore.Eq("is_public", true)},
		Order:   []rowstore.Order{rowstore.Desc(rowstore.ColumnCreatedAt)},
	})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("second", rows[0]["content"])
	s.Equal("first", rows[1]["content"])
}

func (s *GatewaySuite) TestSelectEmptyTableReturnsEmptySlice() {
	rows, err := s.gateway.Select(context.Background(), rowstore.TableThoughts, rowstore.Query{})
	s.Require().NoError(err)
	s.NotNil(rows)
	s.Empty(rows)
}

func (s *GatewaySuite) TestUpdateIsPartial() {
	ctx := context.Background()
	row, err := s.gateway.Insert(ctx, rowstore.TableThoughts, rowstore.Row{
		"title": "Drift", "content": "original", "x": 30.5, "y": 70.0,
	})
	s.Require().NoError(err)
	id := row["id"].(string)

	s.Require().NoError(s.gateway.Update(ctx, rowstore.TableThoughts, id, rowstore.Row{"content": "revised"}))

	rows, err := s.gateway.Select(ctx, rowstore.TableThoughts, rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq(rowstore.ColumnID, id)},
	})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("revised", rows[0]["content"])
	s.Equal("Drift", rows[0]["title"])
	s.Equal(30.5, rows[0]["x"])
}

func (s *GatewaySuite) TestUpdateAndDeleteMissingIDAreNoops() {
	ctx := context.Background()
	missing := uuid.NewString()
	s.NoError(s.gateway.Update(ctx, rowstore.TableEvents, missing, rowstore.Row{"title": "x"}))
	s.NoError(s.gateway.Delete(ctx, rowstore.TableEvents, missing))
}

func (s *GatewaySuite) TestDeleteRemovesRow() {
	ctx := context.Background()
	row, err := s.gateway.Insert(ctx, rowstore.TableThoughts, rowstore.Row{"title": "t", "content": "c"})
	s.Require().NoError(err)

	s.Require().NoError(s.gateway.Delete(ctx, rowstore.TableThoughts, row["id"].(string)))

	rows, err := s.gateway.Select(ctx, rowstore.TableThoughts, rowstore.Query{})
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *GatewaySuite) TestEventDeleteLeavesChildren() {
	ctx := context.Background()
	parent, err := s.gateway.Insert(ctx, rowstore.TableEvents, rowstore.Row{"title": "p", "start_year": 2010})
	s.Require().NoError(err)
	_, err = s.gateway.Insert(ctx, rowstore.TableEvents, rowstore.Row{
		"title": "c", "start_year": 2011, "parent_id": parent["id"],
	})
	s.Require().NoError(err)

	s.Require().NoError(s.gateway.Delete(ctx, rowstore.TableEvents, parent["id"].(string)))

	rows, err := s.gateway.Select(ctx, rowstore.TableEvents, rowstore.Query{})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(parent["id"], rows[0]["parent_id"])
}

func (s *GatewaySuite) TestUnknownColumnRejected() {
	_, err := s.gateway.Insert(context.Background(), rowstore.TableEvents, rowstore.Row{"nope": 1})
	s.ErrorIs(err, rowstore.ErrUnknownColumn)
}
