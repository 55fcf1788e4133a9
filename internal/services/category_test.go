package services

import (
	"context"
	"testing"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySeedFromOnlineWhenLocalEmpty(t *testing.T) {
	resolver, local, online := newTestResolver(t, true)
	svc := NewCategoryService(resolver)

	seedCategory(t, online, "Geography")
	seedCategory(t, online, "Math")

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	var localCount int64
	local.Model(&models.Category{}).Count(&localCount)
	assert.EqualValues(t, 2, localCount)
}

func TestCategorySeedSkippedWhenLocalPopulated(t *testing.T) {
	resolver, local, online := newTestResolver(t, true)
	svc := NewCategoryService(resolver)

	seedCategory(t, local, "Existing")
	seedCategory(t, online, "Geography")

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Existing", categories[0].Title)
}

func TestCategoryCreateRejectsDuplicateTitle(t *testing.T) {
	resolver, _, _ := newTestResolver(t, false)
	svc := NewCategoryService(resolver)

	_, err := svc.Create("Geography", "")
	require.NoError(t, err)

	_, err = svc.Create("Geography", "/uploads/other.png")
	assert.EqualError(t, err, "category already exists")
}

func TestExploreIncludesQuizzes(t *testing.T) {
	resolver, local, _ := newTestResolver(t, false)
	svc := NewCategoryService(resolver)

	user := seedUser(t, local, "alice")
	category := seedCategory(t, local, "Geography")
	seedQuiz(t, local, user.ID, category.ID, "Capitals")
	seedQuiz(t, local, user.ID, category.ID, "Rivers")

	categories, err := svc.Explore(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Len(t, categories[0].Quizzes, 2)
}
