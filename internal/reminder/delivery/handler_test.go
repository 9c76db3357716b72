package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentdesk-backend/internal/reminder/domain"
	"rentdesk-backend/internal/reminder/usecase"
	"rentdesk-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUsecase struct {
	result     usecase.GenerateResult
	err        error
	windowDays int
	markedID   string
}

func (s *stubUsecase) GenerateReminders(ctx context.Context) (usecase.GenerateResult, error) {
	return s.result, s.err
}

func (s *stubUsecase) ListPending(ctx context.Context) ([]*domain.ReminderView, error) {
	return nil, s.err
}

func (s *stubUsecase) ListUpcoming(ctx context.Context, windowDays int) ([]*domain.ReminderView, error) {
	s.windowDays = windowDays
	return []*domain.ReminderView{{Reminder: domain.Reminder{ID: "r-1"}, PropertyName: "Unit 7"}}, s.err
}

func (s *stubUsecase) MarkSent(ctx context.Context, id string) error {
	s.markedID = id
	return s.err
}

func newRouter(uc usecase.ReminderUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReminderHandler(uc, zap.NewNop())
	r := gin.New()
	r.POST("/reminders/generate", h.GenerateReminders)
	r.GET("/reminders", h.ListReminders)
	r.GET("/reminders/upcoming", h.ListUpcomingReminders)
	r.PUT("/reminders/:id/mark-sent", h.MarkSent)
	return r
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestGenerateReminders(t *testing.T) {
	r := newRouter(&stubUsecase{result: usecase.GenerateResult{RentDue: 2, LeaseExpiry: 1}})

	w := serve(r, http.MethodPost, "/reminders/generate")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Reminders generated successfully", body["message"])
	assert.Equal(t, float64(2), body["rent_due"])
	assert.Equal(t, float64(1), body["lease_expiry"])
	assert.Equal(t, float64(3), body["created"])
}

func TestGenerateReminders_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"already running", apperror.Conflict("reminder generation is already running"), http.StatusConflict},
		{"store failure", apperror.DataStore("reminder.create", assert.AnError), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newRouter(&stubUsecase{err: tt.err}), http.MethodPost, "/reminders/generate")
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"error":"`+apperror.Message(tt.err)+`"}`, w.Body.String())
		})
	}
}

func TestListReminders_EmptyIsArray(t *testing.T) {
	w := serve(newRouter(&stubUsecase{}), http.MethodGet, "/reminders")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListUpcomingReminders_Days(t *testing.T) {
	uc := &stubUsecase{}
	r := newRouter(uc)

	w := serve(r, http.MethodGet, "/reminders/upcoming?days=14")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 14, uc.windowDays)
	assert.Contains(t, w.Body.String(), `"property_name":"Unit 7"`)

	w = serve(r, http.MethodGet, "/reminders/upcoming")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, uc.windowDays)

	w = serve(r, http.MethodGet, "/reminders/upcoming?days=soon")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkSent(t *testing.T) {
	uc := &stubUsecase{}
	w := serve(newRouter(uc), http.MethodPut, "/reminders/r-42/mark-sent")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "r-42", uc.markedID)
	assert.JSONEq(t, `{"message":"Reminder marked as sent"}`, w.Body.String())
}
