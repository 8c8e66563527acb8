package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/service"
	mockUsecase "cromptch/internal/mocks/usecase"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// withUser mimics what the auth middleware leaves on the context.
func withUser(c echo.Context, user *entity.User) {
	c.Set("user", user)
	c.Set("token", "tok")
}

func TestUserHandler_Register(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: newDiscardLogger()})

	userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice", Email: "alice@example.com", Password: "hunter22!", CaptchaToken: "cap",
		}).
		Return(&entity.User{ID: uuid.New()}, nil)

	c, rec := newJSONContext(http.MethodPost, "/user",
		`{"username":"alice","email":"alice@example.com","password":"hunter22!","hcaptchaToken":"cap"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User created", rec.Body.String())
}

func TestUserHandler_Register_PropagatesDomainError(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: newDiscardLogger()})

	userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTooShort)

	c, _ := newJSONContext(http.MethodPost, "/user", `{"username":"al"}`)
	assert.ErrorIs(t, h.Register(c), domainerrors.ErrUsernameTooShort)
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	h := NewUserHandler(UserHandlerParams{
		UserUC: mockUsecase.NewMockUserUsecase(t),
		AuthUC: mockUsecase.NewMockAuthUsecase(t),
		Logger: newDiscardLogger(),
	})

	c, _ := newJSONContext(http.MethodPost, "/user", `{"username":`)
	assert.ErrorIs(t, h.Register(c), domainerrors.ErrInvalidBody)
}

func TestUserHandler_Self(t *testing.T) {
	h := NewUserHandler(UserHandlerParams{
		UserUC: mockUsecase.NewMockUserUsecase(t),
		AuthUC: mockUsecase.NewMockAuthUsecase(t),
		Logger: newDiscardLogger(),
	})
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "a@x", PasswordHash: "secret-hash", IsAdmin: true}

	c, rec := newJSONContext(http.MethodGet, "/user/self", "")
	withUser(c, user)

	require.NoError(t, h.Self(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var view UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, user.ID, view.ID)
	assert.True(t, view.IsAdmin)
}

func TestUserHandler_Logout(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t), AuthUC: authUC, Logger: newDiscardLogger()})

	authUC.EXPECT().RevokeToken(mock.Anything, "tok").Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/user/logout", "")
	withUser(c, &entity.User{ID: uuid.New()})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, "Logged out", rec.Body.String())
}

func TestRecipeHandler_Create(t *testing.T) {
	recipeUC := mockUsecase.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
	author := &entity.User{ID: uuid.New()}
	recipeID := uuid.New()

	recipeUC.EXPECT().
		Create(mock.Anything, author, mock.MatchedBy(func(in *entity.RecipeCreation) bool {
			return in.Title == "Toast" && len(in.Ingredients) == 1 && in.Ingredients[0].Name == "bread" &&
				len(in.Steps) == 1 && in.Steps[0].Description == "Toast it"
		})).
		Return(&usecase.RecipeDetails{Recipe: &entity.Recipe{RecipeMetadata: entity.RecipeMetadata{ID: recipeID}}}, nil)

	c, rec := newJSONContext(http.MethodPost, "/recipe/create",
		`{"title":"Toast","description":"","ingredients":[[1,"slice","bread"]],"steps":["Toast it"]}`)
	withUser(c, author)

	require.NoError(t, h.Create(c))

	var resp IDResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, recipeID, resp.ID)
}

func TestRecipeHandler_List(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantInput func(usecase.ListRecipesInput) bool
	}{
		{
			name:  "defaults",
			query: "",
			wantInput: func(in usecase.ListRecipesInput) bool {
				return in.Limit == nil && in.Sort == entity.RecipeSortCreatedAsc
			},
		},
		{
			name:  "named order",
			query: "?limit=2&order=title_asc",
			wantInput: func(in usecase.ListRecipesInput) bool {
				return in.Limit != nil && *in.Limit == 2 && in.Sort == entity.RecipeSortTitleAsc
			},
		},
		{
			name:  "legacy numeric order",
			query: "?order=2",
			wantInput: func(in usecase.ListRecipesInput) bool {
				return in.Sort == entity.RecipeSortCreatedDesc
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipeUC := mockUsecase.NewMockRecipeUsecase(t)
			h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})

			recipeUC.EXPECT().List(mock.Anything, mock.MatchedBy(tt.wantInput)).
				Return([]*entity.RecipeMetadata{{ID: uuid.New(), Title: "Apple Pie"}}, nil)

			c, rec := newJSONContext(http.MethodGet, "/recipe/list"+tt.query, "")
			require.NoError(t, h.List(c))

			var views []RecipeMetadataView
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
			require.Len(t, views, 1)
			assert.Equal(t, "Apple Pie", views[0].Title)
		})
	}
}

func TestRecipeHandler_List_NonNumericLimit(t *testing.T) {
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: mockUsecase.NewMockRecipeUsecase(t), Logger: newDiscardLogger()})

	c, _ := newJSONContext(http.MethodGet, "/recipe/list?limit=ten", "")
	assert.ErrorIs(t, h.List(c), domainerrors.ErrInvalidListLimit)
}

func TestRecipeHandler_Get(t *testing.T) {
	recipeUC := mockUsecase.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
	id := uuid.New()

	recipeUC.EXPECT().Get(mock.Anything, id).Return(nil, domainerrors.ErrRecipeNotFound)

	c, _ := newJSONContext(http.MethodGet, "/recipe/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	assert.ErrorIs(t, h.Get(c), domainerrors.ErrRecipeNotFound)

	c, _ = newJSONContext(http.MethodGet, "/recipe/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	assert.ErrorIs(t, h.Get(c), domainerrors.ErrRecipeNotFound)
}

func TestRecipeHandler_ShareQR(t *testing.T) {
	recipeUC := mockUsecase.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
	id := uuid.New()

	recipeUC.EXPECT().ShareQR(mock.Anything, id).Return([]byte("png-bytes"), nil)

	c, rec := newJSONContext(http.MethodGet, "/recipe/"+id.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.ShareQR(c))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestAdminHandler_DeleteRecipe(t *testing.T) {
	recipeUC := mockUsecase.NewMockRecipeUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{RecipeUC: recipeUC, UserUC: mockUsecase.NewMockUserUsecase(t), Logger: newDiscardLogger()})
	admin := &entity.User{ID: uuid.New(), IsAdmin: true}
	id := uuid.New()

	recipeUC.EXPECT().Delete(mock.Anything, admin, id).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/admin/recipe/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	withUser(c, admin)

	require.NoError(t, h.DeleteRecipe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAdminHandler_ListUsers(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{RecipeUC: mockUsecase.NewMockRecipeUsecase(t), UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: uuid.New(), Username: "alice", PasswordHash: "h1"},
		{ID: uuid.New(), Username: "bob", PasswordHash: "h2", IsAdmin: true},
	}, nil)

	c, rec := newJSONContext(http.MethodGet, "/admin/users", "")
	require.NoError(t, h.ListUsers(c))

	var views []UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "bob", views[1].Username)
	assert.NotContains(t, rec.Body.String(), "h1")
}

func TestImageHandler_Upload(t *testing.T) {
	imageUC := mockUsecase.NewMockImageUsecase(t)
	h := NewImageHandler(ImageHandlerParams{ImageUC: imageUC, Logger: newDiscardLogger()})
	owner := &entity.User{ID: uuid.New()}
	imageID := uuid.New()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "cake.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png data"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	imageUC.EXPECT().Upload(mock.Anything, owner, "cake.png", mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, "png data", string(data))
		}).
		Return(&entity.Image{ID: imageID}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/image", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withUser(c, owner)

	require.NoError(t, h.Upload(c))

	var resp IDResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, imageID, resp.ID)
}

func TestImageHandler_Upload_MissingFile(t *testing.T) {
	h := NewImageHandler(ImageHandlerParams{ImageUC: mockUsecase.NewMockImageUsecase(t), Logger: newDiscardLogger()})

	c, _ := newJSONContext(http.MethodPost, "/api/image", "{}")
	withUser(c, &entity.User{ID: uuid.New()})

	assert.ErrorIs(t, h.Upload(c), domainerrors.ErrImageUploadFailed)
}

func TestImageHandler_Fetch(t *testing.T) {
	imageUC := mockUsecase.NewMockImageUsecase(t)
	h := NewImageHandler(ImageHandlerParams{ImageUC: imageUC, Logger: newDiscardLogger()})
	id := uuid.New()

	imageUC.EXPECT().Thumbnail(mock.Anything, id).
		Return(&service.MediaObject{Data: []byte("webp"), ContentType: "image/webp"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/image/thumbnail/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Thumbnail(c))
	assert.Equal(t, "image/webp", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "webp", rec.Body.String())

	c, _ = newJSONContext(http.MethodGet, "/api/image/xyz", "")
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	assert.ErrorIs(t, h.Fetch(c), domainerrors.ErrImageNotFound)
}
