package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hall-of-fame-backend/internal/api/handlers"
	"hall-of-fame-backend/internal/mocks"
	"hall-of-fame-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{"store reachable", nil, http.StatusOK, "healthy"},
		{"store down", errors.New("connection refused"), http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			store.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.pingErr
			})

			httpSuite := testutils.SetupHTTPTest()
			httpSuite.Router.GET("/health", handlers.NewHealthHandler(store, "1.0.0").Health)

			recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var res handlers.HealthResponse
			testutils.ParseJSON(t, recorder, &res)
			assert.Equal(t, tt.wantState, res.Status)
			assert.Equal(t, "1.0.0", res.Version)
		})
	}
}
