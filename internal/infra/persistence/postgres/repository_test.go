package postgres

import (
	"context"
	"testing"
	"time"

	"cromptch/internal/domain/entity"
	"cromptch/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteSchema mirrors migrations/00001_init.sql in a dialect SQLite accepts.
var sqliteSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT false,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE user_tokens (
		token TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		last_used DATETIME NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE images (
		id TEXT PRIMARY KEY,
		delete_token TEXT NOT NULL,
		owner TEXT REFERENCES users (id) ON DELETE SET NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE recipes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL CHECK (title <> ''),
		description TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		image_id TEXT REFERENCES images (id) ON DELETE SET NULL,
		time_estimate_active TEXT,
		time_estimate_total TEXT,
		source_url TEXT,
		created_at DATETIME NOT NULL,
		edited_at DATETIME NOT NULL
	)`,
	`CREATE TABLE recipe_ingredients (
		recipe_id TEXT NOT NULL REFERENCES recipes (id) ON DELETE CASCADE,
		num INTEGER NOT NULL,
		quantity TEXT NOT NULL,
		unit TEXT NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (recipe_id, num)
	)`,
	`CREATE TABLE recipe_steps (
		recipe_id TEXT NOT NULL REFERENCES recipes (id) ON DELETE CASCADE,
		num INTEGER NOT NULL,
		description TEXT NOT NULL,
		image_id TEXT REFERENCES images (id) ON DELETE SET NULL,
		PRIMARY KEY (recipe_id, num)
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	for _, stmt := range sqliteSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "alice", byEmail.Username)
	assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice")

	sameName := &entity.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}
	assert.ErrorIs(t, repo.Create(ctx, sameName), repository.ErrDuplicate)

	sameEmail := &entity.User{Username: "alicia", Email: "alice@example.com", PasswordHash: "x"}
	assert.ErrorIs(t, repo.Create(ctx, sameEmail), repository.ErrDuplicate)
}

func TestUserRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "carol")
	createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)
}

func TestTokenRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Token{Token: "tok-1", UserID: user.ID, LastUsed: issued}))

	owner, err := repo.FindOwner(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, owner.User.ID)
	assert.Equal(t, "alice", owner.User.Username)
	assert.WithinDuration(t, issued, owner.LastUsed, time.Second)

	touched := issued.Add(time.Hour)
	require.NoError(t, repo.Touch(ctx, "tok-1", touched))

	owner, err = repo.FindOwner(ctx, "tok-1")
	require.NoError(t, err)
	assert.WithinDuration(t, touched, owner.LastUsed, time.Second)

	require.NoError(t, repo.Delete(ctx, "tok-1"))

	_, err = repo.FindOwner(ctx, "tok-1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "tok-1"), repository.ErrTokenNotFound)
	assert.ErrorIs(t, repo.Touch(ctx, "tok-1", touched), repository.ErrTokenNotFound)
}

func TestTokenRepository_UnknownUser(t *testing.T) {
	db := newTestDB(t)

	err := NewTokenRepository(db).Create(context.Background(), &entity.Token{
		Token:    "tok-1",
		UserID:   uuid.New(),
		LastUsed: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestRecipeRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")

	meta := &entity.RecipeMetadata{
		Title:              "Pancakes",
		Description:        "Fluffy",
		Author:             user.ID,
		TimeEstimateActive: ptr(decimal.RequireFromString("15")),
		SourceURL:          ptr("https://example.com/pancakes"),
	}
	require.NoError(t, repo.CreateMetadata(ctx, meta))
	require.NotEqual(t, uuid.Nil, meta.ID)
	assert.Equal(t, meta.CreatedAt, meta.EditedAt)

	ingredients := []entity.Ingredient{
		{Quantity: decimal.RequireFromString("2.5"), Unit: "cup", Name: "flour"},
		{Quantity: decimal.RequireFromString("1"), Unit: "pc", Name: "egg"},
		{Quantity: decimal.RequireFromString("0.25"), Unit: "tsp", Name: "salt"},
	}
	steps := []entity.Step{
		{Description: "Mix"},
		{Description: "Fry"},
	}
	require.NoError(t, repo.CreateIngredients(ctx, meta.ID, ingredients))
	require.NoError(t, repo.CreateSteps(ctx, meta.ID, steps))

	got, err := repo.FindMetadata(ctx, meta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Title)
	assert.Equal(t, user.ID, got.Author)
	require.NotNil(t, got.TimeEstimateActive)
	assert.True(t, got.TimeEstimateActive.Equal(decimal.NewFromInt(15)))
	assert.Nil(t, got.TimeEstimateTotal)
	assert.Nil(t, got.ImageID)
	require.NotNil(t, got.SourceURL)
	assert.Equal(t, "https://example.com/pancakes", *got.SourceURL)

	gotIngredients, err := repo.FindIngredients(ctx, meta.ID)
	require.NoError(t, err)
	require.Len(t, gotIngredients, 3)
	for i, want := range ingredients {
		assert.Equal(t, want.Name, gotIngredients[i].Name)
		assert.Equal(t, want.Unit, gotIngredients[i].Unit)
		assert.True(t, want.Quantity.Equal(gotIngredients[i].Quantity), "quantity of %s", want.Name)
	}

	gotSteps, err := repo.FindSteps(ctx, meta.ID)
	require.NoError(t, err)
	require.Len(t, gotSteps, 2)
	assert.Equal(t, "Mix", gotSteps[0].Description)
	assert.Equal(t, "Fry", gotSteps[1].Description)

	_, err = repo.FindMetadata(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRecipeRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, title := range []string{"Banana Bread", "Apple Pie", "Carrot Cake"} {
		require.NoError(t, repo.CreateMetadata(ctx, &entity.RecipeMetadata{
			Title:     title,
			Author:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	titles := func(recipes []*entity.RecipeMetadata) []string {
		out := make([]string, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.Title)
		}

		return out
	}

	tests := []struct {
		name  string
		limit int
		sort  entity.RecipeSort
		want  []string
	}{
		{"created asc", 10, entity.RecipeSortCreatedAsc, []string{"Banana Bread", "Apple Pie", "Carrot Cake"}},
		{"created desc", 10, entity.RecipeSortCreatedDesc, []string{"Carrot Cake", "Apple Pie", "Banana Bread"}},
		{"title asc", 2, entity.RecipeSortTitleAsc, []string{"Apple Pie", "Banana Bread"}},
		{"title desc", 1, entity.RecipeSortTitleDesc, []string{"Carrot Cake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := repo.List(ctx, tt.limit, tt.sort)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(recipes))
		})
	}
}

func TestRecipeRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	meta := &entity.RecipeMetadata{Title: "Toast", Author: user.ID}
	require.NoError(t, repo.CreateMetadata(ctx, meta))
	require.NoError(t, repo.CreateIngredients(ctx, meta.ID, []entity.Ingredient{
		{Quantity: decimal.NewFromInt(1), Unit: "slice", Name: "bread"},
	}))
	require.NoError(t, repo.CreateSteps(ctx, meta.ID, []entity.Step{{Description: "Toast it"}}))

	require.NoError(t, repo.Delete(ctx, meta.ID))

	_, err := repo.FindMetadata(ctx, meta.ID)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)

	var ingredientRows, stepRows int64
	require.NoError(t, db.Table("recipe_ingredients").Where("recipe_id = ?", meta.ID).Count(&ingredientRows).Error)
	require.NoError(t, db.Table("recipe_steps").Where("recipe_id = ?", meta.ID).Count(&stepRows).Error)
	assert.Zero(t, ingredientRows)
	assert.Zero(t, stepRows)

	assert.ErrorIs(t, repo.Delete(ctx, meta.ID), repository.ErrRecipeNotFound)
}

func TestTransactionManager_RollsBackRecipeOnBadStepImage(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")
	recipeID := uuid.New()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		recipes := factory.RecipeRepo()

		meta := &entity.RecipeMetadata{ID: recipeID, Title: "Ghost", Author: user.ID}
		if err := recipes.CreateMetadata(ctx, meta); err != nil {
			return err
		}
		if err := recipes.CreateIngredients(ctx, recipeID, []entity.Ingredient{
			{Quantity: decimal.NewFromInt(1), Unit: "pc", Name: "egg"},
		}); err != nil {
			return err
		}

		return recipes.CreateSteps(ctx, recipeID, []entity.Step{
			{Description: "Look at the picture", ImageID: ptr(uuid.New())},
		})
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidReference))

	_, err = NewRecipeRepository(db).FindMetadata(ctx, recipeID)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)

	var ingredientRows int64
	require.NoError(t, db.Table("recipe_ingredients").Where("recipe_id = ?", recipeID).Count(&ingredientRows).Error)
	assert.Zero(t, ingredientRows)
}

func TestImageRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "alice")

	image := &entity.Image{ID: uuid.New(), DeleteToken: "del", Owner: &user.ID}
	require.NoError(t, repo.Create(ctx, image))
	assert.False(t, image.CreatedAt.IsZero())

	assert.ErrorIs(t, repo.Create(ctx, &entity.Image{ID: image.ID, DeleteToken: "again"}), repository.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Image{ID: uuid.New(), DeleteToken: "x", Owner: ptr(uuid.New())}), repository.ErrInvalidReference)
}
