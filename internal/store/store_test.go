package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdavydov/leaselint/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleReport() *model.ContractReport {
	return &model.ContractReport{
		Jurisdiction:     "NSW",
		OverallVerdict:   model.OverallIllegal,
		AverageScore:     72.5,
		IllegalCount:     1,
		ClausesEvaluated: 4,
		Results: []model.AssessmentResult{
			{ClauseID: "c1", Verdict: model.VerdictIllegal, Score: 60, Illegal: true,
				Reasons: []string{"Bond of 6 weeks exceeds NSW maximum of 4 weeks"}},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	analysis, err := s.Save(ctx, sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, analysis.ID)

	got, err := s.Get(ctx, analysis.ID)
	require.NoError(t, err)

	assert.Equal(t, analysis.ID, got.ID)
	assert.Equal(t, "NSW", got.Jurisdiction)
	require.NotNil(t, got.Report)
	assert.Equal(t, model.OverallIllegal, got.Report.OverallVerdict)
	assert.Equal(t, 72.5, got.Report.AverageScore)
	require.Len(t, got.Report.Results, 1)
	assert.True(t, got.Report.Results[0].Illegal)
}

func TestStore_GetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_List(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Save(ctx, sampleReport())
		require.NoError(t, err)
	}

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, "NSW", e.Jurisdiction)
		assert.Equal(t, model.OverallIllegal, e.OverallVerdict)
		assert.Equal(t, 1, e.IllegalCount)
	}

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	analysis, err := s.Save(ctx, sampleReport())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, analysis.ID))

	_, err = s.Get(ctx, analysis.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, analysis.ID), ErrNotFound)
}
