package maintainer

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lucascresencio/leet-test/internal/auth"
	"github.com/lucascresencio/leet-test/internal/user"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, userID int) (*Maintainer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Maintainer), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Maintainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Maintainer), args.Error(1)
}

func (m *MockRepository) FindByUserID(ctx context.Context, userID int) (*Maintainer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Maintainer), args.Error(1)
}

func (m *MockRepository) SetClientID(ctx context.Context, id int, clientID string) error {
	return m.Called(ctx, id, clientID).Error(0)
}

func (m *MockRepository) SaveCard(ctx context.Context, maintainerID int, cardID, lastFourDigits, brand string) (*Card, error) {
	args := m.Called(ctx, maintainerID, cardID, lastFourDigits, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Card), args.Error(1)
}

func (m *MockRepository) ListCards(ctx context.Context, maintainerID int) ([]Card, error) {
	args := m.Called(ctx, maintainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Card), args.Error(1)
}

func (m *MockRepository) SetCardStatus(ctx context.Context, maintainerID int, cardID, status string) error {
	return m.Called(ctx, maintainerID, cardID, status).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, name, email, passwordHash, document, phoneNumber, role string) (*user.User, error) {
	args := m.Called(ctx, name, email, passwordHash, document, phoneNumber, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

func authedContext(w *httptest.ResponseRecorder, method, target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Set("user_id", 7)
	c.Set("user_role", auth.RoleMember)
	return c
}

func TestRegisterPromotesUserToMaintainer(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	repo.On("FindByUserID", mock.Anything, 7).Return(nil, sql.ErrNoRows)
	repo.On("Create", mock.Anything, 7).Return(&Maintainer{ID: 3, UserID: 7}, nil)
	users.On("UpdateRole", mock.Anything, 7, auth.RoleMaintainer).Return(nil)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/maintainers")

	NewHandler(repo, users).Register(c)

	require.Equal(t, http.StatusCreated, w.Code)
	users.AssertExpectations(t)
}

func TestRegisterTwiceIsConflict(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	repo.On("FindByUserID", mock.Anything, 7).Return(&Maintainer{ID: 3, UserID: 7}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodPost, "/maintainers")

	NewHandler(repo, users).Register(c)

	require.Equal(t, http.StatusConflict, w.Code)
	repo.AssertNumberOfCalls(t, "Create", 0)
	users.AssertNumberOfCalls(t, "UpdateRole", 0)
}

func TestGetMeNotAMaintainer(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByUserID", mock.Anything, 7).Return(nil, sql.ErrNoRows)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodGet, "/maintainers/me")

	NewHandler(repo, new(MockUserRepository)).GetMe(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCardsShowsMetadataOnly(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByUserID", mock.Anything, 7).Return(&Maintainer{ID: 3, UserID: 7}, nil)
	repo.On("ListCards", mock.Anything, 3).Return([]Card{
		{ID: 1, MaintainerID: 3, CardID: "card_abc", LastFourDigits: "4242", Brand: "visa", Status: "active"},
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodGet, "/maintainers/me/cards")

	NewHandler(repo, new(MockUserRepository)).ListCards(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"4242"`)
	assert.Contains(t, w.Body.String(), `"card_abc"`)
}

func TestDeactivateUnknownCard(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByUserID", mock.Anything, 7).Return(&Maintainer{ID: 3, UserID: 7}, nil)
	repo.On("SetCardStatus", mock.Anything, 3, "card_zzz", "inactive").Return(ErrCardNotFound)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodDelete, "/maintainers/me/cards/card_zzz")
	c.Params = gin.Params{{Key: "cardID", Value: "card_zzz"}}

	NewHandler(repo, new(MockUserRepository)).DeactivateCard(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeactivateCard(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByUserID", mock.Anything, 7).Return(&Maintainer{ID: 3, UserID: 7}, nil)
	repo.On("SetCardStatus", mock.Anything, 3, "card_abc", "inactive").Return(nil)

	w := httptest.NewRecorder()
	c := authedContext(w, http.MethodDelete, "/maintainers/me/cards/card_abc")
	c.Params = gin.Params{{Key: "cardID", Value: "card_abc"}}

	NewHandler(repo, new(MockUserRepository)).DeactivateCard(c)

	require.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
