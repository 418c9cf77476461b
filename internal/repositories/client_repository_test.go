package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientapi/internal/models"
)

var djamila = models.Client{
	ID:        8,
	Name:      "Djamila Ribeiro",
	CPF:       "10619244884",
	Income:    4500.0,
	BirthDate: time.Date(1975, 11, 10, 7, 0, 0, 0, time.UTC),
	Status:    1,
}

func newTestRepo(t *testing.T) *ClientRepository {
	t.Helper()
	return NewClientRepository(newTestDB(t), DriverSQLite)
}

func TestClientRepository_FindByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		c, err := repo.FindByID(ctx, 8)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, &djamila, c)
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		c, err := repo.FindByID(ctx, 1000)
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestClientRepository_FindAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("last single-element page", func(t *testing.T) {
		page, err := repo.FindAll(ctx, models.NewPageRequest(11, 1))
		require.NoError(t, err)

		require.Equal(t, 1, page.NumberOfElements())
		assert.Equal(t, int64(12), page.Content[0].ID)
		assert.Equal(t, "Jorge Amado", page.Content[0].Name)
		assert.Equal(t, int64(12), page.TotalElements)
		assert.Equal(t, 12, page.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := repo.FindAll(ctx, models.NewPageRequest(5, 12))
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
		assert.Equal(t, int64(12), page.TotalElements)
	})

	t.Run("sorted by name descending", func(t *testing.T) {
		page, err := repo.FindAll(ctx, models.NewPageRequest(0, 3).WithSort("name", models.Desc))
		require.NoError(t, err)

		names := make([]string, 0, len(page.Content))
		for _, c := range page.Content {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Toni Morrison", "Silvio Almeida", "Lázaro Ramos"}, names)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		_, err := repo.FindAll(ctx, models.NewPageRequest(0, 3).WithSort("password", models.Asc))
		assert.ErrorIs(t, err, ErrInvalidSort)
	})
}

func TestClientRepository_FindByIncome(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	page, err := repo.FindByIncome(ctx, 4500.0, models.NewPageRequest(0, 1).WithSort("name", models.Asc))
	require.NoError(t, err)

	require.Equal(t, 1, page.NumberOfElements())
	assert.Equal(t, djamila, page.Content[0])
	assert.Equal(t, int64(4), page.TotalElements)

	all, err := repo.FindByIncome(ctx, 4500.0, models.NewPageRequest(0, 10).WithSort("income", models.Desc))
	require.NoError(t, err)
	require.Len(t, all.Content, 4)
	for _, c := range all.Content {
		assert.GreaterOrEqual(t, c.Income, 4500.0)
	}
	assert.Equal(t, "Toni Morrison", all.Content[0].Name)

	none, err := repo.FindByIncome(ctx, 1e9, models.NewPageRequest(0, 10))
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())
	assert.Equal(t, int64(0), none.TotalElements)
}

func TestClientRepository_Save(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("insert assigns id", func(t *testing.T) {
		in := &models.Client{
			Name:      "Lélia Gonzalez",
			CPF:       "10619244899",
			Income:    3200.5,
			BirthDate: time.Date(1935, 2, 1, 7, 0, 0, 0, time.UTC),
			Status:    0,
		}

		saved, err := repo.Save(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(13), saved.ID)
		assert.Zero(t, in.ID, "input must not be mutated")

		stored, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, stored)
	})

	t.Run("update overwrites fields", func(t *testing.T) {
		changed := djamila
		changed.Name = "Djamila"

		saved, err := repo.Save(ctx, &changed)
		require.NoError(t, err)
		assert.Equal(t, &changed, saved)

		stored, err := repo.FindByID(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, "Djamila", stored.Name)
		assert.Equal(t, djamila.CPF, stored.CPF)
	})

	t.Run("update of missing row", func(t *testing.T) {
		ghost := djamila
		ghost.ID = 1000

		_, err := repo.Save(ctx, &ghost)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClientRepository_DeleteByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DeleteByID(ctx, 2))
	assert.ErrorIs(t, repo.DeleteByID(ctx, 2), ErrNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, 1000), ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, ApplyMigrations(db, DriverSQLite))

	_, err := Open(context.Background(), "oracle", "whatever")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
	assert.ErrorIs(t, ApplyMigrations(db, "oracle"), ErrUnsupportedDriver)
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		in     string
		want   string
	}{
		{"postgres untouched", DriverPostgres, `SELECT 1 WHERE a=$1 AND b=$2`, `SELECT 1 WHERE a=$1 AND b=$2`},
		{"sqlite positional", DriverSQLite, `SELECT 1 WHERE a=$1 AND b=$12`, `SELECT 1 WHERE a=? AND b=?`},
		{"lone dollar kept", DriverSQLite, `SELECT '$' || $1`, `SELECT '$' || ?`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rebind(tt.driver, tt.in))
		})
	}
}
