package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cromptch/config"
	deliverycontext "cromptch/internal/delivery/context"
	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/domain/service"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager        repository.TransactionManager
	recipeRepo       repository.RecipeRepository
	userRepo         repository.UserRepository
	qrCode           service.QRCodeService
	publisher        service.EventPublisher
	metrics          service.MetricsRecorder
	defaultListLimit int
	maxListLimit     int
	now              func() time.Time
	logger           *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	UserRepo   repository.UserRepository
	QRCode     service.QRCodeService
	Publisher  service.EventPublisher
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	srv := &recipeService{
		txManager:        params.TxManager,
		recipeRepo:       params.RecipeRepo,
		userRepo:         params.UserRepo,
		qrCode:           params.QRCode,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		defaultListLimit: 10,
		maxListLimit:     100,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           params.Logger,
	}

	if params.Config != nil && params.Config.Recipe != nil {
		if params.Config.Recipe.DefaultListLimit > 0 {
			srv.defaultListLimit = params.Config.Recipe.DefaultListLimit
		}
		if params.Config.Recipe.MaxListLimit > 0 {
			srv.maxListLimit = params.Config.Recipe.MaxListLimit
		}
	}

	return srv
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the recipe, then writes metadata, ingredients and steps in one transaction.
func (srv *recipeService) Create(ctx context.Context, author *entity.User, input *entity.RecipeCreation) (*usecase.RecipeDetails, error) {
	if err := validateRecipe(input); err != nil {
		return nil, err
	}

	now := srv.now()
	meta := &entity.RecipeMetadata{
		ID:                 uuid.New(),
		Title:              input.Title,
		Description:        input.Description,
		Author:             author.ID,
		ImageID:            input.ImageID,
		TimeEstimateActive: input.TimeEstimateActive,
		TimeEstimateTotal:  input.TimeEstimateTotal,
		SourceURL:          input.SourceURL,
		CreatedAt:          now,
		EditedAt:           now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		if err := recipeRepo.CreateMetadata(ctx, meta); err != nil {
			return errors.Wrap(err, "failed to create recipe metadata")
		}
		if err := recipeRepo.CreateIngredients(ctx, meta.ID, input.Ingredients); err != nil {
			return errors.Wrap(err, "failed to create recipe ingredients")
		}
		if err := recipeRepo.CreateSteps(ctx, meta.ID, input.Steps); err != nil {
			return errors.Wrap(err, "failed to create recipe steps")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			srv.log(ctx).Warn("Recipe references unknown image", slog.Any("error", err))

			return nil, domainerrors.ErrUnknownImage
		}

		srv.log(ctx).Error("Failed to create recipe", slog.String("author", author.ID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrRecipeCreateFailed.Wrap(err)
	}

	srv.log(ctx).Info("Recipe created",
		slog.String("recipeID", meta.ID.String()),
		slog.String("author", author.ID.String()),
	)
	srv.metrics.RecipeCreated()
	srv.publish(ctx, service.RecipeEventCreated, meta, author.ID)

	return srv.Get(ctx, meta.ID)
}

// validateRecipe applies the creation rules in a fixed order and reports the first violation.
func validateRecipe(input *entity.RecipeCreation) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrRecipeTitleEmpty
	}
	if len(input.Ingredients) == 0 {
		return domainerrors.ErrRecipeNoIngredients
	}
	if len(input.Steps) == 0 {
		return domainerrors.ErrRecipeNoSteps
	}

	for _, ingredient := range input.Ingredients {
		switch {
		case strings.TrimSpace(ingredient.Name) == "":
			return domainerrors.ErrIngredientNameEmpty
		case strings.TrimSpace(ingredient.Unit) == "":
			return domainerrors.ErrIngredientUnitEmpty
		case ingredient.Quantity.IsNegative():
			return domainerrors.ErrIngredientNegative
		}
	}

	for _, step := range input.Steps {
		if strings.TrimSpace(step.Description) == "" {
			return domainerrors.ErrStepDescriptionEmpty
		}
	}

	if (input.TimeEstimateActive != nil && input.TimeEstimateActive.IsNegative()) ||
		(input.TimeEstimateTotal != nil && input.TimeEstimateTotal.IsNegative()) {
		return domainerrors.ErrTimeEstimateNegative
	}

	return nil
}

// Get reassembles the aggregate: metadata, then ingredients and steps in position order.
func (srv *recipeService) Get(ctx context.Context, id uuid.UUID) (*usecase.RecipeDetails, error) {
	meta, err := srv.findMetadata(ctx, id)
	if err != nil {
		return nil, err
	}

	ingredients, err := srv.recipeRepo.FindIngredients(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to load ingredients", slog.String("recipeID", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrRecipeFetchFailed.Wrap(err)
	}

	steps, err := srv.recipeRepo.FindSteps(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to load steps", slog.String("recipeID", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrRecipeFetchFailed.Wrap(err)
	}

	author, err := srv.userRepo.FindByID(ctx, meta.Author)
	if err != nil {
		srv.log(ctx).Error("Failed to load recipe author", slog.String("recipeID", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrRecipeFetchFailed.Wrap(err)
	}

	return &usecase.RecipeDetails{
		Recipe: &entity.Recipe{
			RecipeMetadata: *meta,
			Ingredients:    ingredients,
			Steps:          steps,
		},
		AuthorName: author.Username,
	}, nil
}

func (srv *recipeService) findMetadata(ctx context.Context, id uuid.UUID) (*entity.RecipeMetadata, error) {
	meta, err := srv.recipeRepo.FindMetadata(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		srv.log(ctx).Error("Failed to load recipe", slog.String("recipeID", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrRecipeFetchFailed.Wrap(err)
	}

	return meta, nil
}

// List returns recipe metadata only. The limit is clamped to the configured maximum.
func (srv *recipeService) List(ctx context.Context, input usecase.ListRecipesInput) ([]*entity.RecipeMetadata, error) {
	limit := srv.defaultListLimit
	if input.Limit != nil {
		if *input.Limit < 1 {
			return nil, domainerrors.ErrInvalidListLimit
		}
		limit = min(*input.Limit, srv.maxListLimit)
	}

	sort := input.Sort
	if !sort.Valid() {
		sort = entity.RecipeSortCreatedAsc
	}

	recipes, err := srv.recipeRepo.List(ctx, limit, sort)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Any("error", err))

		return nil, domainerrors.ErrRecipeListFailed.Wrap(err)
	}

	return recipes, nil
}

// Delete removes a recipe with its ingredients and steps.
func (srv *recipeService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	meta, err := srv.findMetadata(ctx, id)
	if err != nil {
		return err
	}

	srv.log(ctx).Info(fmt.Sprintf("User %s deleted recipe %s", actor.ID, id),
		slog.String("username", actor.Username),
		slog.String("title", meta.Title),
	)

	if err := srv.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound
		}

		srv.log(ctx).Error("Failed to delete recipe", slog.String("recipeID", id.String()), slog.Any("error", err))

		return domainerrors.ErrRecipeDeleteFailed.Wrap(err)
	}

	srv.metrics.RecipeDeleted()
	srv.publish(ctx, service.RecipeEventDeleted, meta, actor.ID)

	return nil
}

func (srv *recipeService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.findMetadata(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateRecipeQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code", slog.String("recipeID", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeGenerationFailed.Wrap(err)
	}

	return png, nil
}

// publish is best effort: a broker outage must not fail the request that changed the recipe.
func (srv *recipeService) publish(ctx context.Context, eventType string, meta *entity.RecipeMetadata, actorID uuid.UUID) {
	event := &service.RecipeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		RecipeID:   meta.ID.String(),
		AuthorID:   meta.Author.String(),
		ActorID:    actorID.String(),
		Title:      meta.Title,
		OccurredAt: srv.now(),
	}

	if err := srv.publisher.PublishRecipeEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish recipe event",
			slog.String("type", eventType),
			slog.String("recipeID", event.RecipeID),
			slog.Any("error", err),
		)
	}
}
