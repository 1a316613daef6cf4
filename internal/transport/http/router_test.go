package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports/mocks"
	rest "github.com/Gunvolt24/oppify/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type fixture struct {
	opps   *mocks.MockOpportunityService
	auth   *mocks.MockAuthService
	tokens *mocks.MockTokenVerifier
	router *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &fixture{
		opps:   mocks.NewMockOpportunityService(ctrl),
		auth:   mocks.NewMockAuthService(ctrl),
		tokens: mocks.NewMockTokenVerifier(ctrl),
	}
	h := rest.NewHandler(f.opps, f.auth, noopLogger{}, 0)
	f.router = rest.NewRouter(h, f.tokens, rest.RouterConfig{OtelServiceName: "test"})
	return f
}

func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), "body=%s", w.Body.String())
	return got["error"]
}

const bearer = "Bearer good-token"

func sample(id int64) *domain.Opportunity {
	return &domain.Opportunity{
		ID:          id,
		Title:       "SWE Intern",
		Type:        domain.TypeInternship,
		Deadline:    domain.NewDate(2024, time.March, 15),
		Source:      "Internshala",
		ApplyLink:   "https://internshala.com/x",
		Eligibility: "CS students",
	}
}

func TestRoot_Status(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"Backend running"}`, w.Body.String())
}

func TestList_FiltersPassedThrough(t *testing.T) {
	f := newFixture(t)

	month := 3
	f.opps.EXPECT().
		List(gomock.Any(), domain.OpportunityFilter{Type: "internship", Interest: "AI", Month: &month}).
		Return([]*domain.Opportunity{sample(1)}, nil)

	w := f.do(http.MethodGet, "/api/v1/opportunities/?type=internship&interest=AI&month=3", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "2024-03-15", got[0]["deadline"])
	require.Equal(t, "internship", got[0]["type"])
	require.Equal(t, "https://internshala.com/x", got[0]["apply_link"])
}

func TestList_EmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.opps.EXPECT().List(gomock.Any(), domain.OpportunityFilter{}).Return(nil, nil)

	w := f.do(http.MethodGet, "/api/v1/opportunities/?month=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", w.Body.String())
}

func TestList_MalformedMonth_400(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/api/v1/opportunities/?month=march", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorBody(t, w), "month")
}

func TestList_ServiceError_500(t *testing.T) {
	f := newFixture(t)
	f.opps.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))

	w := f.do(http.MethodGet, "/api/v1/opportunities/", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "internal server error", errorBody(t, w))
}

func TestCreate_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/v1/opportunities/", `{"title":"x"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "not authenticated", errorBody(t, w))
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	f.tokens.EXPECT().Verify("expired").Return(int64(0), errors.New("token is expired"))
	w = f.do(http.MethodPost, "/api/v1/opportunities/", `{"title":"x"}`, "Authorization", "Bearer expired")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/api/v1/opportunities/", `{"title":"x"}`, "Authorization", "Basic abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreate_OK(t *testing.T) {
	f := newFixture(t)

	f.tokens.EXPECT().Verify("good-token").Return(int64(5), nil)
	f.opps.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
			require.Equal(t, "SWE Intern", o.Title)
			require.Equal(t, domain.OpportunityType("Internship"), o.Type)
			require.Equal(t, "2024-03-15", o.Deadline.String())
			require.Equal(t, "https://internshala.com/x", o.ApplyLink)
			require.Equal(t, "", o.Eligibility)
			out := *o
			out.ID = 1
			out.Type = domain.TypeInternship
			return &out, nil
		})

	body := `{"title":"SWE Intern","type":"Internship","deadline":"2024-03-15","source":"Internshala","link":"https://internshala.com/x"}`
	w := f.do(http.MethodPost, "/api/v1/opportunities/", body, "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got domain.Opportunity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, domain.TypeInternship, got.Type)
}

func TestCreate_InvalidSource_400(t *testing.T) {
	f := newFixture(t)

	f.tokens.EXPECT().Verify("good-token").Return(int64(5), nil)
	f.opps.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &domain.InvalidSourceError{Type: "internship", Source: "LinkedIn", Expected: "Internshala"})

	body := `{"title":"SWE Intern","type":"internship","deadline":"2024-03-15","source":"LinkedIn","apply_link":""}`
	w := f.do(http.MethodPost, "/api/v1/opportunities/", body, "Authorization", bearer)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid source for internship. Expected: Internshala", errorBody(t, w))
}

func TestCreate_UnknownType_400(t *testing.T) {
	f := newFixture(t)

	f.tokens.EXPECT().Verify("good-token").Return(int64(5), nil)
	f.opps.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnknownType)

	body := `{"title":"Bootcamp","type":"bootcamp","deadline":"2024-03-15","source":"Internshala"}`
	w := f.do(http.MethodPost, "/api/v1/opportunities/", body, "Authorization", bearer)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_BadBody_400(t *testing.T) {
	f := newFixture(t)

	f.tokens.EXPECT().Verify("good-token").Return(int64(5), nil).Times(2)

	// нет обязательных полей
	w := f.do(http.MethodPost, "/api/v1/opportunities/", `{"title":"x"}`, "Authorization", bearer)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// неверный формат даты
	body := `{"title":"x","type":"grant","deadline":"15.03.2024","source":"Govt Portal"}`
	w = f.do(http.MethodPost, "/api/v1/opportunities/", body, "Authorization", bearer)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	f.tokens.EXPECT().Verify("good-token").Return(int64(9), nil).Times(3)
	f.opps.EXPECT().Apply(gomock.Any(), int64(9), int64(1)).
		Return(&domain.Application{ID: 3, UserID: 9, OpportunityID: 1, AppliedAt: now}, nil)
	f.opps.EXPECT().Apply(gomock.Any(), int64(9), int64(404)).
		Return(nil, domain.ErrNotFound)

	w := f.do(http.MethodPost, "/api/v1/opportunities/1/apply", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.JSONEq(t, `{"id":3,"user_id":9,"opportunity_id":1,"applied_at":"2024-03-01T10:00:00Z"}`, w.Body.String())

	w = f.do(http.MethodPost, "/api/v1/opportunities/404/apply", "", "Authorization", bearer)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodPost, "/api/v1/opportunities/abc/apply", "", "Authorization", bearer)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply_Unauthenticated_NoServiceCall(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/api/v1/opportunities/1/apply", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyApplications(t *testing.T) {
	f := newFixture(t)

	f.tokens.EXPECT().Verify("good-token").Return(int64(9), nil)
	f.opps.EXPECT().MyApplications(gomock.Any(), int64(9)).
		Return([]*domain.Opportunity{sample(1), sample(1)}, nil)

	w := f.do(http.MethodGet, "/api/v1/opportunities/my-applications", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got []domain.Opportunity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	f.auth.EXPECT().Register(gomock.Any(), gomock.Any(), "secret1").
		DoAndReturn(func(_ context.Context, u *domain.User, _ string) (*domain.User, error) {
			require.Equal(t, []string{}, u.Interests)
			out := *u
			out.ID = 1
			out.HashedPassword = "hash"
			return &out, nil
		})
	w := f.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"ann@example.com","password":"secret1","skills":["go"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotContains(t, w.Body.String(), "hash")

	f.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrEmailTaken)
	w = f.do(http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = f.do(http.MethodPost, "/api/v1/auth/register", `{"name":"Ann","email":"not-an-email","password":"secret1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	f.auth.EXPECT().Login(gomock.Any(), "ann@example.com", "secret1").Return("jwt", nil)
	w = f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"access_token":"jwt","token_type":"bearer"}`, w.Body.String())

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", domain.ErrInvalidCredentials)
	w = f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"ann@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNoRoute_404(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/no-such-route", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "route not found", errorBody(t, w))
}

func TestMethodNotAllowed_405(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/ping", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "GET", w.Header().Get("Allow"))

	w = f.do(http.MethodDelete, "/api/v1/opportunities/", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	allow := w.Header().Get("Allow")
	require.Contains(t, allow, "GET")
	require.Contains(t, allow, "POST")
}

func TestPingAndMetrics_200(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())

	w = f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_Echoed(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/ping", "", "X-Request-ID", "rid-1")
	require.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
}

// Обработчик с коротким таймаутом: сервис ждёт ctx.Done() → 500.
func TestHandlerTimeout_500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	opps := mocks.NewMockOpportunityService(ctrl)
	opps.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.OpportunityFilter) ([]*domain.Opportunity, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	h := rest.NewHandler(opps, mocks.NewMockAuthService(ctrl), noopLogger{}, 10*time.Millisecond)
	r := rest.NewRouter(h, mocks.NewMockTokenVerifier(ctrl), rest.RouterConfig{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/", http.NoBody))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORS_Enabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := rest.NewHandler(mocks.NewMockOpportunityService(ctrl), mocks.NewMockAuthService(ctrl), noopLogger{}, 0)
	r := rest.NewRouter(h, mocks.NewMockTokenVerifier(ctrl), rest.RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
