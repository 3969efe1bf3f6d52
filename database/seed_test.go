package database

import (
	"testing"

	"github.com/ousidus/braintrain/internal/model"
	"github.com/ousidus/braintrain/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.OpenTestDB(t)
	require.NoError(t, Seed(db))
	return db
}

func TestSeed_PopulatesReferenceTables(t *testing.T) {
	db := openSeededDB(t)

	counts := map[any]int64{
		&model.StroopColor{}:    6,
		&model.ExerciseType{}:   5,
		&model.WordList{}:       4,
		&model.ReadingPassage{}: 3,
	}
	for m, want := range counts {
		var got int64
		require.NoError(t, db.Model(m).Count(&got).Error)
		assert.Equal(t, want, got, "%T", m)
	}

	// 400 additions, 210 subtractions (a >= b), 81 multiplications.
	var problems int64
	require.NoError(t, db.Model(&model.MathProblem{}).Count(&problems).Error)
	assert.EqualValues(t, 691, problems)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := openSeededDB(t)
	require.NoError(t, Seed(db))

	var colors int64
	require.NoError(t, db.Model(&model.StroopColor{}).Count(&colors).Error)
	assert.EqualValues(t, 6, colors)
}

func TestVerifyReferenceData_RejectsBadHex(t *testing.T) {
	db := openSeededDB(t)
	require.NoError(t, db.Model(&model.StroopColor{}).
		Where("name = ?", "красный").
		Update("hex_code", "red").Error)

	assert.Error(t, VerifyReferenceData(db))
}

func TestVerifyReferenceData_RejectsWrongAnswer(t *testing.T) {
	db := openSeededDB(t)
	require.NoError(t, db.Model(&model.MathProblem{}).
		Where("expression = ?", "2 + 2").
		Update("answer", 5).Error)

	assert.Error(t, VerifyReferenceData(db))
}

func TestVerifyReferenceData_RejectsOverlappingWordLists(t *testing.T) {
	db := openSeededDB(t)
	require.NoError(t, db.Create(&model.WordList{
		Category: "дубликаты",
		Words:    []byte(`["кошка"]`),
	}).Error)

	assert.Error(t, VerifyReferenceData(db))
}

func TestEvalExpression(t *testing.T) {
	cases := []struct {
		expr string
		want int
	}{
		{"7 - 3", 4},
		{"6 × 7", 42},
		{"2 + 2", 4},
		{"20 + 20", 40},
		{"10 − 4", 6},
	}
	for _, tc := range cases {
		got, err := EvalExpression(tc.expr)
		require.NoError(t, err, tc.expr)
		assert.Equal(t, tc.want, got, tc.expr)
	}

	_, err := EvalExpression("2 / 2")
	assert.Error(t, err)
	_, err = EvalExpression("nonsense")
	assert.Error(t, err)
}
