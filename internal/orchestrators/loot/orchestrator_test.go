package loot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/edover/praeda-go/internal/engine"
	enginemock "github.com/edover/praeda-go/internal/engine/mock"
	lootent "github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/orchestrators/loot"
	loottable "github.com/edover/praeda-go/internal/repositories/loot_table"
	loottablemock "github.com/edover/praeda-go/internal/repositories/loot_table/mock"
	"github.com/edover/praeda-go/internal/taxonomy"
	"github.com/edover/praeda-go/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *loottablemock.MockRepository
	mockEngine *enginemock.MockEngine
	service    loot.Service
	ctx        context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = loottablemock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	service, err := loot.NewOrchestrator(&loot.Config{
		TableRepo: s.mockRepo,
		Engine:    s.mockEngine,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) storedTable() *loottable.Table {
	return &loottable.Table{
		ID:       "table_123",
		Name:     testutils.TestTableName,
		Document: testutils.CreateTestDocument(s.T()),
	}
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := loot.NewOrchestrator(&loot.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = loot.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestSaveTable() {
	doc := testutils.CreateTestDocument(s.T())

	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input loottable.SaveInput) (*loottable.SaveOutput, error) {
			s.Assert().Equal(testutils.TestTableName, input.Table.Name)
			stored := *input.Table
			stored.ID = "table_123"
			return &loottable.SaveOutput{Table: &stored}, nil
		})

	output, err := s.service.SaveTable(s.ctx, &loot.SaveTableInput{
		Name:     testutils.TestTableName,
		Document: doc,
	})
	s.Require().NoError(err)
	s.Assert().Equal("table_123", output.Table.ID)
}

func (s *OrchestratorTestSuite) TestSaveTableRejectsInvalidDocument() {
	// A name pool under an undeclared type fails document replay.
	doc := taxonomy.Document{
		Qualities: []lootent.QualityTier{{Name: "common", Weight: 1}},
		Names: []taxonomy.NamePoolDocument{
			{Type: "weapon", Subtype: "sword", Names: []string{"longsword"}},
		},
	}

	_, err := s.service.SaveTable(s.ctx, &loot.SaveTableInput{
		Name:     testutils.TestTableName,
		Document: doc,
	})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeUnknownParent, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestSaveTableRequiresName() {
	_, err := s.service.SaveTable(s.ctx, &loot.SaveTableInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetTable() {
	table := s.storedTable()

	s.mockRepo.EXPECT().
		Get(s.ctx, loottable.GetInput{ID: "table_123"}).
		Return(&loottable.GetOutput{Table: table}, nil)

	output, err := s.service.GetTable(s.ctx, &loot.GetTableInput{TableID: "table_123"})
	s.Require().NoError(err)
	s.Assert().Equal(table, output.Table)

	_, err = s.service.GetTable(s.ctx, &loot.GetTableInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListTables() {
	tables := []*loottable.Table{s.storedTable()}

	s.mockRepo.EXPECT().
		List(s.ctx, loottable.ListInput{}).
		Return(&loottable.ListOutput{Tables: tables}, nil)

	output, err := s.service.ListTables(s.ctx, &loot.ListTablesInput{})
	s.Require().NoError(err)
	s.Assert().Equal(tables, output.Tables)
}

func (s *OrchestratorTestSuite) TestDeleteTable() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, loottable.DeleteInput{ID: "table_123"}).
		Return(&loottable.DeleteOutput{}, nil)

	_, err := s.service.DeleteTable(s.ctx, &loot.DeleteTableInput{TableID: "table_123"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestGenerate() {
	table := s.storedTable()
	items := []lootent.Item{{Name: "longsword", Type: "weapon", Subtype: "sword"}}

	s.mockRepo.EXPECT().
		Get(s.ctx, loottable.GetInput{ID: "table_123"}).
		Return(&loottable.GetOutput{Table: table}, nil)

	opts := lootent.DefaultOptions()
	s.mockEngine.EXPECT().
		Generate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.GenerateInput) (*engine.GenerateOutput, error) {
			s.Assert().Equal(opts, input.Options)
			s.Assert().True(input.Store.HasSubtype("weapon", "sword"))
			return &engine.GenerateOutput{Items: items}, nil
		})

	output, err := s.service.Generate(s.ctx, &loot.GenerateInput{
		TableID: "table_123",
		Options: opts,
	})
	s.Require().NoError(err)
	s.Assert().Equal(items, output.Items)
}

func (s *OrchestratorTestSuite) TestGenerateMissingTable() {
	s.mockRepo.EXPECT().
		Get(s.ctx, loottable.GetInput{ID: "table_404"}).
		Return(nil, errors.NotFoundf("loot table table_404 not found"))

	_, err := s.service.Generate(s.ctx, &loot.GenerateInput{TableID: "table_404"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGenerateRetainsBatch() {
	table := s.storedTable()
	items := []lootent.Item{{Name: "battleaxe", Type: "weapon", Subtype: "axe"}}

	s.mockRepo.EXPECT().
		Get(s.ctx, loottable.GetInput{ID: "table_123"}).
		Return(&loottable.GetOutput{Table: table}, nil)
	s.mockEngine.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(&engine.GenerateOutput{Items: items}, nil)

	_, err := s.service.Generate(s.ctx, &loot.GenerateInput{
		TableID:  "table_123",
		Options:  lootent.DefaultOptions(),
		BatchKey: "dungeon_chest",
	})
	s.Require().NoError(err)

	batch, err := s.service.GetBatch(s.ctx, &loot.GetBatchInput{BatchKey: "dungeon_chest"})
	s.Require().NoError(err)
	s.Assert().Equal(items, batch.Items)
}

func (s *OrchestratorTestSuite) TestGetBatchMissing() {
	_, err := s.service.GetBatch(s.ctx, &loot.GetBatchInput{BatchKey: "nothing_here"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.service.GetBatch(s.ctx, &loot.GetBatchInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEngineFailurePropagates() {
	table := s.storedTable()

	s.mockRepo.EXPECT().
		Get(s.ctx, loottable.GetInput{ID: "table_123"}).
		Return(&loottable.GetOutput{Table: table}, nil)
	s.mockEngine.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.NoNamesf("no names configured for weapon/sword"))

	_, err := s.service.Generate(s.ctx, &loot.GenerateInput{
		TableID: "table_123",
		Options: lootent.DefaultOptions(),
	})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeNoNames, errors.GetCode(err))
}
