package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearshop/domain/dto"
)

func TestCategoryCreate(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	created, err := catalog.categories.Create(ctx, &dto.CreateCategoryRequest{
		Name: "Graphics Cards",
		Slug: "Graphics Cards", // normalize เป็น kebab-case
	})
	require.NoError(t, err)
	assert.Equal(t, "graphics-cards", created.Slug)
	assert.True(t, created.IsActive)

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		_, err := catalog.categories.Create(ctx, &dto.CreateCategoryRequest{
			Name: "GPUs", Slug: "graphics-cards",
		})
		assert.ErrorIs(t, err, ErrDuplicateCategorySlug)
	})

	t.Run("child requires an existing parent", func(t *testing.T) {
		missing := uint(9999)
		_, err := catalog.categories.Create(ctx, &dto.CreateCategoryRequest{
			Name: "Workstation Cards", Slug: "workstation-cards", ParentID: &missing,
		})
		assert.Error(t, err)

		child, err := catalog.categories.Create(ctx, &dto.CreateCategoryRequest{
			Name: "Workstation Cards", Slug: "workstation-cards", ParentID: &created.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, created.ID, *child.ParentID)
		assert.False(t, child.IsRoot())
	})
}

func TestCategoryListScopes(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	root, err := catalog.categories.Create(ctx, &dto.CreateCategoryRequest{Name: "Components", Slug: "components"})
	require.NoError(t, err)
	_, err = catalog.categories.Create(ctx, &dto.CreateCategoryRequest{Name: "Cooling", Slug: "cooling", ParentID: &root.ID})
	require.NoError(t, err)

	hidden, err := catalog.categories.Create(ctx, &dto.CreateCategoryRequest{Name: "Legacy", Slug: "legacy"})
	require.NoError(t, err)
	inactive := false
	_, err = catalog.categories.Update(ctx, hidden.ID, &dto.UpdateCategoryRequest{IsActive: &inactive})
	require.NoError(t, err)

	all, err := catalog.categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "inactive categories are hidden")

	roots, err := catalog.categories.ListRoots(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "components", roots[0].Slug)
}
