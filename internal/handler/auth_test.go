package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthSvc resolves every attempt the same way, recording the request.
type stubAuthSvc struct {
	resp *dto.LoginResponse
	err  error
	got  *dto.LoginRequest
}

func (s *stubAuthSvc) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	s.got = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

var _ service.AuthService = (*stubAuthSvc)(nil)

func newLoginRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/auth/login", NewAuthHandler(svc).Login)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, req dto.LoginRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func cookieByName(res *http.Response, name string) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func okResponse() *dto.LoginResponse {
	return &dto.LoginResponse{
		AccessToken: "token",
		TokenType:   "bearer",
		User:        dto.SessionUser{Role: model.RoleShopOwner, TenantID: "node_a"},
		Views:       []string{"DASHBOARD"},
	}
}

func TestLogin_RememberMeSetsIdentifierCookies(t *testing.T) {
	svc := &stubAuthSvc{resp: okResponse()}
	r := newLoginRouter(svc)

	w := postLogin(t, r, dto.LoginRequest{
		StoreID: "node_a", UserID: "owner@a.com", Password: "secret99", RememberMe: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	res := w.Result()
	store := cookieByName(res, "bw_store_id")
	require.NotNil(t, store)
	assert.Equal(t, "node_a", store.Value)
	assert.Equal(t, 30*24*60*60, store.MaxAge)

	user := cookieByName(res, "bw_user_id")
	require.NotNil(t, user)
	assert.Equal(t, "owner@a.com", user.Value)

	role := cookieByName(res, "bw_role")
	require.NotNil(t, role)
	assert.Equal(t, "OWNER", role.Value)

	remember := cookieByName(res, "bw_remember")
	require.NotNil(t, remember)
	assert.Equal(t, "true", remember.Value)
}

func TestLogin_RememberMeNeverStoresPassword(t *testing.T) {
	svc := &stubAuthSvc{resp: okResponse()}
	r := newLoginRouter(svc)

	w := postLogin(t, r, dto.LoginRequest{
		StoreID: "node_a", UserID: "owner@a.com", Password: "hunter22", RememberMe: true,
	})
	for _, ck := range w.Result().Cookies() {
		assert.NotContains(t, ck.Value, "hunter22")
	}
	assert.NotContains(t, w.Header().Get("Set-Cookie"), "hunter22")
}

func TestLogin_RememberMeOffClearsCookies(t *testing.T) {
	svc := &stubAuthSvc{resp: okResponse()}
	r := newLoginRouter(svc)

	w := postLogin(t, r, dto.LoginRequest{
		StoreID: "node_a", UserID: "owner@a.com", Password: "secret99", RememberMe: false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, name := range []string{"bw_store_id", "bw_user_id", "bw_role", "bw_remember"} {
		ck := cookieByName(w.Result(), name)
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value, name)
		assert.Less(t, ck.MaxAge, 0, name)
	}
}

func TestLogin_RememberMeAppliedEvenOnRejectedAttempt(t *testing.T) {
	// Cookie writes happen before the outcome is known.
	svc := &stubAuthSvc{err: service.ErrInvalidOwnerCredentials}
	r := newLoginRouter(svc)

	w := postLogin(t, r, dto.LoginRequest{
		StoreID: "node_a", UserID: "owner@a.com", Password: "wrong123", RememberMe: true,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotNil(t, cookieByName(w.Result(), "bw_store_id"))
}

func TestLogin_RememberMeModeTags(t *testing.T) {
	svc := &stubAuthSvc{resp: okResponse()}
	r := newLoginRouter(svc)

	w := postLogin(t, r, dto.LoginRequest{
		StoreID: model.PlatformTenantID, UserID: model.PlatformAdminID, Password: "masterpw", RememberMe: true,
	})
	assert.Equal(t, "SYSTEM", cookieByName(w.Result(), "bw_role").Value)

	w = postLogin(t, r, dto.LoginRequest{
		StoreID: "node_a", UserID: "S1", Password: "staffpw1", AsStaff: true, RememberMe: true,
	})
	assert.Equal(t, "STAFF", cookieByName(w.Result(), "bw_role").Value)
}

func TestLogin_ErrorTaxonomyMapsToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrTenantNotFound, http.StatusNotFound},
		{service.ErrSubscriptionExpired, http.StatusForbidden},
		{service.ErrTenantSuspended, http.StatusForbidden},
		{service.ErrInvalidOwnerCredentials, http.StatusUnauthorized},
		{service.ErrInvalidStaffCredentials, http.StatusUnauthorized},
		{service.ErrInvalidMasterCredentials, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		r := newLoginRouter(&stubAuthSvc{err: tc.err})
		w := postLogin(t, r, dto.LoginRequest{
			StoreID: "node_a", UserID: "owner@a.com", Password: "secret99",
		})
		assert.Equal(t, tc.want, w.Code, tc.err.Error())

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.err.Error(), body["detail"])
	}
}

func TestLogin_RejectsInvalidBody(t *testing.T) {
	r := newLoginRouter(&stubAuthSvc{resp: okResponse()})
	w := postLogin(t, r, dto.LoginRequest{StoreID: "node_a"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
