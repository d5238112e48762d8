package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var documentRowColumns = []string{"path", "doc_id", "data", "created_at", "updated_at"}

type DocumentRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    DocumentRepository
	context context.Context
	now     time.Time
}

func (suite *DocumentRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewDocumentRepo(mock)
	suite.context = context.Background()
	suite.now = time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
}

func (suite *DocumentRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestDocumentRepoTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepoTestSuite))
}

func (suite *DocumentRepoTestSuite) TestSet_Merge() {
	suite.mock.ExpectExec(`INSERT INTO documents .* ON CONFLICT \(path\) DO UPDATE SET data = documents\.data \|\| EXCLUDED\.data`).
		WithArgs("vsdc_items/RW2NTU0000012", "vsdc_items", "", "RW2NTU0000012", []byte(`{"itemNm":"Rice"}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Set(suite.context, "vsdc_items/RW2NTU0000012", map[string]any{"itemNm": "Rice"}, true)
	assert.NoError(suite.T(), err)
}

func (suite *DocumentRepoTestSuite) TestSet_Overwrite() {
	suite.mock.ExpectExec(`ON CONFLICT \(path\) DO UPDATE SET data = EXCLUDED\.data`).
		WithArgs("admin/a1/district/d1", "district", "admin/a1", "d1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Set(suite.context, "admin/a1/district/d1", map[string]any{"name": "Gasabo"}, false)
	assert.NoError(suite.T(), err)
}

func (suite *DocumentRepoTestSuite) TestSet_InvalidPath() {
	err := suite.repo.Set(suite.context, "vsdc_items", map[string]any{}, true)
	assert.ErrorIs(suite.T(), err, ErrInvalidPath)
}

func (suite *DocumentRepoTestSuite) TestGet_Found() {
	rows := pgxmock.NewRows(documentRowColumns).
		AddRow("vsdc_initializations/100600570", "100600570", []byte(`{"tin":"100600570","bhfId":"00"}`), suite.now, suite.now)
	suite.mock.ExpectQuery(`SELECT path, doc_id, data, created_at, updated_at FROM documents WHERE path = \$1`).
		WithArgs("vsdc_initializations/100600570").
		WillReturnRows(rows)

	doc, err := suite.repo.Get(suite.context, "vsdc_initializations/100600570")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "100600570", doc.ID)
	assert.Equal(suite.T(), "00", doc.Data["bhfId"])
	assert.Equal(suite.T(), suite.now, doc.CreatedAt)
}

func (suite *DocumentRepoTestSuite) TestGet_NotFound() {
	suite.mock.ExpectQuery(`FROM documents WHERE path = \$1`).
		WithArgs("vsdc_items/missing").
		WillReturnError(pgx.ErrNoRows)

	doc, err := suite.repo.Get(suite.context, "vsdc_items/missing")
	assert.Nil(suite.T(), doc)
	assert.ErrorIs(suite.T(), err, ErrDocumentNotFound)
}

func (suite *DocumentRepoTestSuite) TestAdd_GeneratesID() {
	suite.mock.ExpectExec(`INSERT INTO documents`).
		WithArgs(pgxmock.AnyArg(), "sales", "admin/a1/district/d1/school/s1/seller/u1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := suite.repo.Add(suite.context, "admin/a1/district/d1/school/s1/seller/u1/sales", map[string]any{"total": 10})
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), id)
}

func (suite *DocumentRepoTestSuite) TestAdd_RejectsDocumentPath() {
	_, err := suite.repo.Add(suite.context, "vsdc_sales/abc", map[string]any{})
	assert.ErrorIs(suite.T(), err, ErrInvalidPath)
}

func (suite *DocumentRepoTestSuite) TestUpdate_NoRows() {
	suite.mock.ExpectExec(`UPDATE documents SET data = data \|\| \$2::jsonb`).
		WithArgs("vsdc_items/missing", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.context, "vsdc_items/missing", map[string]any{"useYn": "N"})
	assert.ErrorIs(suite.T(), err, ErrDocumentNotFound)
}

func (suite *DocumentRepoTestSuite) TestUpdateAndIncrement() {
	suite.mock.ExpectExec(`jsonb_set\(data \|\| \$2::jsonb, ARRAY\[\$3::text\]`).
		WithArgs("vsdc_items/RW2NTU0000012", pgxmock.AnyArg(), "vsdcSyncAttempts", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateAndIncrement(suite.context, "vsdc_items/RW2NTU0000012", map[string]any{"vsdcSynced": true}, "vsdcSyncAttempts", 1)
	assert.NoError(suite.T(), err)
}

func (suite *DocumentRepoTestSuite) TestQueryCollectionGroup() {
	rows := pgxmock.NewRows(documentRowColumns).
		AddRow("admin/a1/district/d1/school/s1/inventory/RW2NTU0000012", "RW2NTU0000012", []byte(`{"tin":"100600570"}`), suite.now, suite.now).
		AddRow("admin/a2/district/d2/school/s2/inventory/RW2NTU0000013", "RW2NTU0000013", []byte(`{"tin":"100600570"}`), suite.now, suite.now)
	suite.mock.ExpectQuery(`WHERE collection = \$1 AND data->>\$2 = \$3`).
		WithArgs("inventory", "tin", "100600570").
		WillReturnRows(rows)

	docs, err := suite.repo.QueryCollectionGroup(suite.context, "inventory", "tin", "100600570")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), docs, 2)
	assert.Equal(suite.T(), "RW2NTU0000013", docs[1].ID)
}

func (suite *DocumentRepoTestSuite) TestQueryCollectionGroup_Empty() {
	suite.mock.ExpectQuery(`WHERE collection = \$1`).
		WithArgs("inventory", "tin", "1").
		WillReturnRows(pgxmock.NewRows(documentRowColumns))

	docs, err := suite.repo.QueryCollectionGroup(suite.context, "inventory", "tin", "1")
	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), docs)
	assert.Empty(suite.T(), docs)
}

func (suite *DocumentRepoTestSuite) TestLatestBy_DatabaseError() {
	suite.mock.ExpectQuery(`ORDER BY data->\$4 DESC NULLS LAST`).
		WithArgs("vsdc_sales", "tin", "100600570", "invcNo").
		WillReturnError(errors.New("connection reset"))

	_, err := suite.repo.LatestBy(suite.context, "vsdc_sales", "tin", "100600570", "invcNo")
	require.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrDocumentNotFound)
	assert.Contains(suite.T(), err.Error(), "connection reset")
}
