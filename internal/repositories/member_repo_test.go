package repositories

import (
	"context"
	"testing"
	"time"

	"adamdesk/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MemberRepoTestSuite struct {
	suite.Suite
	mock  pgxmock.PgxPoolIface
	repo  MemberRepository
	orgID uuid.UUID
	ctx   context.Context
}

func (suite *MemberRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewMemberRepo(mock)
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *MemberRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestMemberRepoTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepoTestSuite))
}

func (suite *MemberRepoTestSuite) TestCreate_Success() {
	member := &models.Member{
		ID:             uuid.New(),
		OrganizationID: suite.orgID,
		FirstName:      "Alex",
		LastName:       "Stone",
		Email:          "alex@example.com",
		Status:         "active",
		PlanName:       "Unlimited",
		JoinedAt:       time.Now().UTC(),
	}

	suite.mock.ExpectExec("INSERT INTO members").
		WithArgs(member.ID, member.OrganizationID, member.FirstName, member.LastName, member.Email, member.Status, member.PlanName, member.JoinedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, member)
	assert.NoError(suite.T(), err)
}

func (suite *MemberRepoTestSuite) TestListByOrganization_ScopedRows() {
	joined := time.Now().UTC()
	created := time.Now().UTC()
	firstID := uuid.New()
	secondID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "organization_id", "first_name", "last_name", "email", "status", "plan_name", "joined_at", "created_at"}).
		AddRow(firstID, suite.orgID, "Alex", "Stone", "alex@example.com", "active", "Unlimited", joined, created).
		AddRow(secondID, suite.orgID, "Riley", "Chen", "riley@example.com", "active", "8x / month", joined, created)

	suite.mock.ExpectQuery("FROM members").
		WithArgs(suite.orgID).
		WillReturnRows(rows)

	members, err := suite.repo.ListByOrganization(suite.ctx, suite.orgID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), members, 2)
	assert.Equal(suite.T(), firstID, members[0].ID)
	assert.Equal(suite.T(), suite.orgID, members[0].OrganizationID)
	assert.Equal(suite.T(), "Riley", members[1].FirstName)
}

func (suite *MemberRepoTestSuite) TestListByOrganization_Empty() {
	rows := pgxmock.NewRows([]string{"id", "organization_id", "first_name", "last_name", "email", "status", "plan_name", "joined_at", "created_at"})

	suite.mock.ExpectQuery("FROM members").
		WithArgs(suite.orgID).
		WillReturnRows(rows)

	members, err := suite.repo.ListByOrganization(suite.ctx, suite.orgID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), members)
}

func (suite *MemberRepoTestSuite) TestCountByOrganization() {
	suite.mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM members").
		WithArgs(suite.orgID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := suite.repo.CountByOrganization(suite.ctx, suite.orgID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}
