package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), testLogger())

	c, err := svc.Create(ctx, "Electronics", "Gadgets and devices")
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", got.Name)

	updated, err := svc.Update(ctx, c.ID, "", "Updated description")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", updated.Name)
	assert.Equal(t, "Updated description", updated.Description)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, c.ID))
	err = svc.Delete(ctx, c.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestCategoryValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), testLogger())

	_, err := svc.Create(ctx, "", "no name")
	assert.True(t, apperr.IsKind(err, apperr.BadInput))

	_, err = svc.Update(ctx, "some-id", "", "")
	assert.True(t, apperr.IsKind(err, apperr.BadInput))

	_, err = svc.Get(ctx, "missing")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
