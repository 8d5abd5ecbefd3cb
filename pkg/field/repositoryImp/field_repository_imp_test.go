package repositoryImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"drainsim/database"
	"drainsim/entities"
	"drainsim/pkg/drainage/types"
)

func TestFieldRepoRoundTrip(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := New(db)

	f := &entities.Field{
		UserID: "farmer-1", Name: "north paddy", LengthM: 20, WidthM: 10, SoilType: "clay",
		CustomDrains: []types.DrainChannel{{X: 1, Z: 2, Direction: "east", Length: 20, Width: 1}},
	}
	require.NoError(t, repo.Create(f))
	require.NotZero(t, f.FieldID)

	got, err := repo.FindByID(f.FieldID, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, "north paddy", got.Name)
	assert.Equal(t, f.CustomDrains, got.CustomDrains)

	_, err = repo.FindByID(f.FieldID, "farmer-2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Create(&entities.Field{UserID: "farmer-1", Name: "south", LengthM: 5, WidthM: 5, SoilType: "sandy"}))
	require.NoError(t, repo.Create(&entities.Field{UserID: "farmer-2", Name: "other", LengthM: 5, WidthM: 5, SoilType: "sandy"}))

	list, err := repo.ListByUser("farmer-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "north paddy", list[0].Name)
	assert.Equal(t, "south", list[1].Name)
}
