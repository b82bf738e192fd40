package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/api"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/auth"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type nullTransport struct{}

func (nullTransport) Send(context.Context, string, string, string) error { return nil }

type fakeArchive struct{}

func (fakeArchive) Store(_ context.Context, key, _ string, _ []byte) (string, error) {
	return "https://s3.local/" + key, nil
}

type apiClient struct {
	t       *testing.T
	handler http.Handler
	tokens  *auth.TokenAuthority
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	tokens := auth.NewTokenAuthority([]byte("secret"), "waterbill", "clients", time.Hour)
	svc := services.New(repomanager.NewMemoryRepositoryManager(), services.Deps{
		Hasher:    &auth.BcryptHasher{Cost: bcrypt.MinCost},
		Tokens:    tokens,
		Seed:      services.AdminSeed{Email: "admin@x.io", Password: "admin123", Name: "Admin"},
		Transport: nullTransport{},
		Archive:   fakeArchive{},
	}, logging.Nop{})
	require.NoError(t, svc.Users.SeedAdmin(context.Background()))

	srv := NewHTTPServer(":0", time.Second, logging.Nop{}, svc, tokens)
	return &apiClient{t: t, handler: srv.Handler(), tokens: tokens}
}

func (a *apiClient) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *apiClient) login(email, password string) string {
	w := a.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: email, Password: password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[api.LoginResponse](a.t, w).Token
}

func TestHealth(t *testing.T) {
	a := newAPIClient(t)
	w := a.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestAuthFlow(t *testing.T) {
	a := newAPIClient(t)

	w := a.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: "alice@x.io", Password: "secret", Name: "Alice", ApartmentNumber: "7"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reg := decode[api.RegisterResponse](t, w)
	assert.Equal(t, "User registered successfully", reg.Message)
	assert.Equal(t, "alice@x.io", reg.User.Email)

	w = a.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: "alice@x.io", Password: "secret", Name: "Alice", ApartmentNumber: "7"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decode[errorBody](t, w).Error.Code)

	w = a.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: "carol@x.io", Password: "secret", Name: "Carol"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "apartment number is required")

	w = a.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "alice@x.io", Password: "wrong!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", "", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := a.login("alice@x.io", "secret")
	w = a.do(http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", decode[api.User](t, w).Name)

	name := "Alice B"
	w = a.do(http.MethodPut, "/api/users/me", token, api.UpdateProfileRequest{Name: &name})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice B", decode[api.User](t, w).Name)

	w = a.do(http.MethodPost, "/api/users/me/change-password", token, api.ChangePasswordRequest{CurrentPassword: "secret", NewPassword: "newsecret", ConfirmPassword: "other"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = a.do(http.MethodPost, "/api/users/me/change-password", token, api.ChangePasswordRequest{CurrentPassword: "secret", NewPassword: "newsecret"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "confirmation is required")
	w = a.do(http.MethodPost, "/api/users/me/change-password", token, api.ChangePasswordRequest{CurrentPassword: "secret", NewPassword: "newsecret", ConfirmPassword: "newsecret"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodDelete, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = a.do(http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthRequired(t *testing.T) {
	a := newAPIClient(t)

	w := a.do(http.MethodGet, "/api/readings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing bearer token", decode[errorBody](t, w).Error.Message)

	w = a.do(http.MethodGet, "/api/readings", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := auth.NewTokenAuthority([]byte("other"), "waterbill", "clients", time.Hour)
	forged, err := other.Issue("u1", "a@b.io", access.RoleAdmin)
	require.NoError(t, err)
	w = a.do(http.MethodGet, "/api/bills/unpaid", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReadingsAndBills(t *testing.T) {
	a := newAPIClient(t)
	a.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: "alice@x.io", Password: "secret", Name: "Alice", ApartmentNumber: "7"})
	a.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: "bob@x.io", Password: "secret", Name: "Bob", ApartmentNumber: "8"})
	alice := a.login("alice@x.io", "secret")
	bob := a.login("bob@x.io", "secret")
	admin := a.login("admin@x.io", "admin123")

	w := a.do(http.MethodPost, "/api/readings", alice, api.CreateReadingRequest{ApartmentNumber: "7", Date: "2024-01-15", ColdWater: 10, HotWater: 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rd := decode[api.Reading](t, w)
	assert.Equal(t, 47.5, rd.Amount)

	w = a.do(http.MethodPost, "/api/readings", alice, api.CreateReadingRequest{ApartmentNumber: "7", Date: "15/01/2024"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/readings/"+rd.ID, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = a.do(http.MethodGet, "/api/readings/"+rd.ID, admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodGet, "/api/readings?startDate=2024-01-01&endDate=2024-01-31", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]api.Reading](t, w), 1)

	w = a.do(http.MethodGet, "/api/readings", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	hot := 1.0
	w = a.do(http.MethodPut, "/api/readings/"+rd.ID, alice, api.UpdateReadingRequest{HotWater: &hot})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 29.5, decode[api.Reading](t, w).Amount)

	w = a.do(http.MethodGet, "/api/bills/unpaid", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "29.50", decode[api.UnpaidBillsResponse](t, w).TotalAmount)

	w = a.do(http.MethodPatch, "/api/bills/"+rd.ID+"/pay", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = a.do(http.MethodPost, "/api/bills/send-all-reminders", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPost, "/api/bills/"+rd.ID+"/send-reminder", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[api.ReminderResponse](t, w).EmailSent)

	w = a.do(http.MethodPost, "/api/bills/send-all-reminders", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bulk := decode[api.BulkReminderResponse](t, w)
	assert.Equal(t, "Sent 1 emails successfully, 0 failed", bulk.Message)

	w = a.do(http.MethodPatch, "/api/bills/"+rd.ID+"/pay", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	paid := decode[api.ReadingResponse](t, w)
	assert.Equal(t, "Bill marked as paid", paid.Message)
	assert.True(t, paid.Reading.IsPaid)

	w = a.do(http.MethodPost, "/api/bills/"+rd.ID+"/send-reminder", admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(http.MethodGet, "/api/reports/annual?year=2024", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[api.AnnualReport](t, w)
	assert.Equal(t, 1, report.Summary.TotalReadings)
	assert.Equal(t, "29.50", report.Summary.PaidAmount)

	w = a.do(http.MethodGet, "/api/reports/annual?year=abc", alice, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/reports/annual/export?year=2024", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[api.ExportResponse](t, w).URL, "https://s3.local/reports/2024/")

	w = a.do(http.MethodDelete, "/api/readings/"+rd.ID, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = a.do(http.MethodDelete, "/api/readings/"+rd.ID, alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = a.do(http.MethodGet, "/api/readings/"+rd.ID, alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := NewHTTPServer("127.0.0.1:0", time.Second, logging.Nop{}, &services.Services{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
