package property

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"proptrack/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&database.User{}, &database.Property{}, &database.AccessToken{}))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) database.User {
	t.Helper()

	u := database.User{Email: email}
	require.NoError(t, db.Create(&u).Error)

	return u
}

func TestGetUserTotalValue(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	createUser(t, db, "owner@example.com")
	createUser(t, db, "empty@example.com")

	for _, value := range []float64{100, 250.5, 0} {
		require.NoError(t, repo.Create(&database.Property{
			Name:         "Unit",
			CurrentValue: value,
			CreatedBy:    "owner@example.com",
		}))
	}

	// Property owned by someone else must not leak into the sum.
	require.NoError(t, repo.Create(&database.Property{
		Name:         "Other",
		CurrentValue: 999,
		CreatedBy:    "someone-else@example.com",
	}))

	total, err := repo.GetUserTotalValue("owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, 350.5, total)

	total, err = repo.GetUserTotalValue("empty@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	_, err = repo.GetUserTotalValue("unknown@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListOrdersByCreatedAtDescending(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"oldest", "middle", "newest"} {
		p := database.Property{Name: name, CreatedBy: "owner@example.com"}
		require.NoError(t, repo.Create(&p))
		require.NoError(t, db.Model(&database.Property{}).
			Where("id = ?", p.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	properties, err := repo.List()
	require.NoError(t, err)
	require.Len(t, properties, 3)

	assert.Equal(t, "newest", properties[0].Name)
	assert.Equal(t, "middle", properties[1].Name)
	assert.Equal(t, "oldest", properties[2].Name)

	for i := 1; i < len(properties); i++ {
		assert.False(t, properties[i].CreatedAt.After(properties[i-1].CreatedAt))
	}
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	p := database.Property{Name: "Found", CreatedBy: "owner@example.com"}
	require.NoError(t, repo.Create(&p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Found", got.Name)

	_, err = repo.GetByID("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesOnlyGivenColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	p := database.Property{
		Name:         "Before",
		Type:         "apartment",
		CurrentValue: 100,
		CreatedBy:    "owner@example.com",
	}
	require.NoError(t, repo.Create(&p))

	updates, fields := FilterUpdates(map[string]any{
		"name":         "After",
		"currentValue": 250.5,
		"bogus":        "dropped",
		"createdBy":    "attacker@example.com",
		"id":           "new-id",
	})
	assert.Equal(t, []string{"currentValue", "name"}, fields)

	require.NoError(t, repo.Update(&p, updates))

	assert.Equal(t, "After", p.Name)
	assert.Equal(t, 250.5, p.CurrentValue)
	assert.Equal(t, "apartment", p.Type)
	assert.Equal(t, "owner@example.com", p.CreatedBy)
}

func TestUpdateWithNoUpdatesIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	p := database.Property{Name: "Unchanged", CreatedBy: "owner@example.com"}
	require.NoError(t, repo.Create(&p))

	updates, fields := FilterUpdates(map[string]any{"unknown": true})
	assert.Empty(t, updates)
	assert.Empty(t, fields)

	require.NoError(t, repo.Update(&p, updates))
	assert.Equal(t, "Unchanged", p.Name)
}
