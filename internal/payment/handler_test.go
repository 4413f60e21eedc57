package payment

import (
	"bytes"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lucascresencio/leet-test/internal/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			switch PaymentMethod(fl.Field().String()) {
			case MethodCreditCard, MethodBoleto, MethodPix:
				return true
			}
			return false
		})
	}
	os.Exit(m.Run())
}

func handlerContext(w *httptest.ResponseRecorder, method, target, body string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	if body != "" {
		c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c
}

func asMaintainer(c *gin.Context) *gin.Context {
	c.Set("user_id", 7)
	c.Set("user_role", auth.RoleMaintainer)
	return c
}

func TestCreateRequiresAuthentication(t *testing.T) {
	f := setup()
	w := httptest.NewRecorder()
	c := handlerContext(w, http.MethodPost, "/payments", `{"amount":"10.00","payment_method":"pix","ong_id":1}`)

	NewHandler(f.svc).Create(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateMalformedBody(t *testing.T) {
	f := setup()
	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodPost, "/payments", `{"amount": nope}`))

	NewHandler(f.svc).Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	f.repo.AssertNumberOfCalls(t, "CreateDraft", 0)
}

func TestCreateUnknownPaymentMethod(t *testing.T) {
	f := setup()
	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodPost, "/payments",
		`{"amount":"10.00","payment_method":"cash","ong_id":1}`))

	NewHandler(f.svc).Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	f.repo.AssertNumberOfCalls(t, "CreateDraft", 0)
}

func TestCreateForbiddenRole(t *testing.T) {
	f := setup()
	w := httptest.NewRecorder()
	c := handlerContext(w, http.MethodPost, "/payments", `{"amount":"10.00","payment_method":"pix","ong_id":1}`)
	c.Set("user_id", 7)
	c.Set("user_role", auth.RoleMember)

	NewHandler(f.svc).Create(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"forbidden"`)
}

func TestCreateUnknownONGIs404(t *testing.T) {
	f := setup()
	f.withMaintainer()
	f.ongs.On("FindByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodPost, "/payments",
		`{"amount":"10.00","payment_method":"pix","ong_id":99}`))

	NewHandler(f.svc).Create(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"not_found"`)
}

func TestGetInvalidID(t *testing.T) {
	f := setup()
	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodGet, "/payments/abc", ""))
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	NewHandler(f.svc).Get(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReturnsOwnTransaction(t *testing.T) {
	f := setup()
	m := f.withMaintainer()
	f.repo.On("FindByID", mock.Anything, 12).Return(&Transaction{
		ID:            12,
		MaintainerID:  m.ID,
		OngID:         1,
		Amount:        amountOf("10.00"),
		PaymentMethod: MethodPix,
		Status:        StatusPending,
	}, nil)

	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodGet, "/payments/12", ""))
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	NewHandler(f.svc).Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":12`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestGetSomeoneElsesTransactionIs404(t *testing.T) {
	f := setup()
	f.withMaintainer()
	f.repo.On("FindByID", mock.Anything, 12).Return(&Transaction{
		ID:           12,
		MaintainerID: 999,
	}, nil)

	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodGet, "/payments/12", ""))
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	NewHandler(f.svc).Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReturnsDonationHistory(t *testing.T) {
	f := setup()
	m := f.withMaintainer()
	f.repo.On("ListByMaintainer", mock.Anything, m.ID).Return([]Transaction{
		{ID: 2, MaintainerID: m.ID, Status: StatusPaid},
		{ID: 1, MaintainerID: m.ID, Status: StatusFailed},
	}, nil)

	w := httptest.NewRecorder()
	c := asMaintainer(handlerContext(w, http.MethodGet, "/payments", ""))

	NewHandler(f.svc).List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)
	assert.Contains(t, w.Body.String(), `"status":"failed"`)
}

func TestErrorKindStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"forbidden", Forbidden("caller may not view payments"), http.StatusForbidden},
		{"not found", NotFound("transaction not found"), http.StatusNotFound},
		{"invalid reference", InvalidReference("campaign does not belong to the ONG"), http.StatusBadRequest},
		{"invalid request", InvalidRequest("amount must be greater than zero"), http.StatusBadRequest},
		{"payment rejected", PaymentRejected("insufficient_funds"), http.StatusPaymentRequired},
		{"gateway error", GatewayError("processor rejected the request", errors.New("status 422")), http.StatusBadGateway},
		{"gateway unavailable", GatewayUnavailable("payment processor unreachable", errors.New("timeout")), http.StatusServiceUnavailable},
		{"internal", Internal("persisting transaction draft", errors.New("db down")), http.StatusInternalServerError},
		{"unclassified", errors.New("plain failure"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			require.Equal(t, tc.status, w.Code)
		})
	}
}
