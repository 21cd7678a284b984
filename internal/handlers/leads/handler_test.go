package leads_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers/handlerstest"
	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers/leads"
	"github.com/Nazarious-ucu/newsletter-manager/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct {
	res  models.Result[models.Lead]
	form models.LeadForm
}

func (m *mockService) CreateLead(_ context.Context, form models.LeadForm) models.Result[models.Lead] {
	m.form = form
	return m.res
}

func setupRouter(t *testing.T, svc *mockService) *gin.Engine {
	r := handlerstest.NewRouter(t)
	r.POST("/leads", leads.NewHandler(svc).Create)
	return r
}

func postForm(r *gin.Engine, values url.Values, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateLeadEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		res      models.Result[models.Lead]
		accept   string
		wantCode int
		wantBody string
	}{
		{
			name:     "success redirects home",
			res:      models.OK(models.Lead{}, models.RouteHome),
			wantCode: http.StatusSeeOther,
		},
		{
			name:     "invalid email renders form",
			res:      models.ValidationFailed[models.Lead](models.FieldErrors{"email": {"Invalid email address."}}, "Invalid email address."),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: "Invalid email address.",
		},
		{
			name:     "duplicate as json",
			res:      models.StorageFailed[models.Lead]("Email already registered.", models.ErrDuplicate),
			accept:   "application/json",
			wantCode: http.StatusConflict,
			wantBody: `"outcome":"storage_failed"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{res: tc.res}
			w := postForm(setupRouter(t, svc), url.Values{"email": {"lead@example.com"}, "source": {"ads"}}, tc.accept)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
			assert.Equal(t, "lead@example.com", svc.form.Email)
			assert.Equal(t, "ads", svc.form.Source)
			if tc.wantCode == http.StatusSeeOther {
				assert.Equal(t, "/", w.Header().Get("Location"))
			}
		})
	}
}
