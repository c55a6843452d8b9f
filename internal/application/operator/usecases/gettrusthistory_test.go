package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type mockOperatorRepo struct {
	listFunc    func(ctx context.Context) ([]*operator.Operator, error)
	getByIDFunc func(ctx context.Context, id uint) (*operator.Operator, error)
}

func (m *mockOperatorRepo) Save(ctx context.Context, op *operator.Operator) error   { return nil }
func (m *mockOperatorRepo) Update(ctx context.Context, op *operator.Operator) error { return nil }

func (m *mockOperatorRepo) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("operator not found")
}

func (m *mockOperatorRepo) GetByName(ctx context.Context, name string) (*operator.Operator, error) {
	return nil, errors.NewNotFoundError("operator not found")
}

func (m *mockOperatorRepo) List(ctx context.Context) ([]*operator.Operator, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockTrustLogRepo struct {
	listByOperatorFunc func(ctx context.Context, operatorID uint) ([]*sla.TrustScoreLog, error)
}

func (m *mockTrustLogRepo) SaveIfAbsent(ctx context.Context, log *sla.TrustScoreLog) (bool, error) {
	return true, nil
}

func (m *mockTrustLogRepo) ExistsBySourceID(ctx context.Context, sourceID string) (bool, error) {
	return false, nil
}

func (m *mockTrustLogRepo) ListByOperator(ctx context.Context, operatorID uint) ([]*sla.TrustScoreLog, error) {
	if m.listByOperatorFunc != nil {
		return m.listByOperatorFunc(ctx, operatorID)
	}
	return nil, nil
}

// TestListOperators returns every operator from the store.
func TestListOperators(t *testing.T) {
	op1, err := operator.ReconstructOperator(1, "SwiftBus Travels", 98.5, 1, 24, time.Now(), time.Now())
	require.NoError(t, err)
	op2, err := operator.ReconstructOperator(2, "Sharma Transports", 72.0, 9, 80, time.Now(), time.Now())
	require.NoError(t, err)
	repo := &mockOperatorRepo{
		listFunc: func(context.Context) ([]*operator.Operator, error) {
			return []*operator.Operator{op1, op2}, nil
		},
	}
	uc := NewListOperatorsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Operators, 2)
	assert.Equal(t, "SwiftBus Travels", result.Operators[0].Name())
}

// TestGetTrustHistory returns the operator with its score trail.
func TestGetTrustHistory(t *testing.T) {
	op, err := operator.ReconstructOperator(3, "Verma Roadways", 99.3, 2, 40, time.Now(), time.Now())
	require.NoError(t, err)
	operators := &mockOperatorRepo{
		getByIDFunc: func(context.Context, uint) (*operator.Operator, error) { return op, nil },
	}
	entry := sla.ReconstructTrustScoreLog(1, 3, 100, 99.5, "Refund timeout SLA violation for PNR RB110", "refund:4", time.Now())
	logs := &mockTrustLogRepo{
		listByOperatorFunc: func(context.Context, uint) ([]*sla.TrustScoreLog, error) {
			return []*sla.TrustScoreLog{entry}, nil
		},
	}
	uc := NewGetTrustHistoryUseCase(operators, logs, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTrustHistoryQuery{OperatorID: 3})

	require.NoError(t, err)
	assert.Equal(t, "Verma Roadways", result.Operator.Name())
	require.Len(t, result.History, 1)
	assert.Equal(t, "refund:4", result.History[0].SourceID())
}

// TestGetTrustHistory_UnknownOperator verifies a bad ID yields not found.
func TestGetTrustHistory_UnknownOperator(t *testing.T) {
	uc := NewGetTrustHistoryUseCase(&mockOperatorRepo{}, &mockTrustLogRepo{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTrustHistoryQuery{OperatorID: 404})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
