package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/application/admintable"
	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/interfaces/http/handlers"
	"github.com/pawpath/pawpath/internal/interfaces/http/routes"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

// fakeBusinessService backs a real admin handler so the client is tested
// against the actual wire format.
type fakeBusinessService struct {
	mu       sync.Mutex
	rows     map[uint]*dto.BusinessSummary
	lastList dto.ListBusinessesRequest
	listErr  error
}

func newFakeBusinessService() *fakeBusinessService {
	return &fakeBusinessService{rows: map[uint]*dto.BusinessSummary{
		1: {ID: 1, Name: "Happy Paws Grooming", Status: "active", Plan: "PRO", BillingStatus: "ACTIVE"},
		2: {ID: 2, Name: "Bark Avenue", Status: "pending", Plan: "FREE", BillingStatus: "TRIAL"},
	}}
}

func (f *fakeBusinessService) ListBusinesses(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = req
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*dto.BusinessSummary{}
	for id := uint(1); id <= uint(len(f.rows)); id++ {
		row := *f.rows[id]
		out = append(out, &row)
	}
	return &dto.ListBusinessesResponse{Businesses: out, Total: int64(len(out))}, nil
}

func (f *fakeBusinessService) GetBusiness(ctx context.Context, id uint) (*dto.BusinessSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.NewNotFoundError("business not found")
	}
	cp := *row
	return &cp, nil
}

func (f *fakeBusinessService) UpdateBusinessStatus(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.NewNotFoundError("business not found")
	}
	row.Status = status
	cp := *row
	return &cp, nil
}

func setupTestServer(t *testing.T, svc *fakeBusinessService) *BusinessClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		BusinessHandler: handlers.NewBusinessHandler(svc, logger.NewNopLogger()),
	})
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return NewBusinessClient(srv.URL+"/", WithHTTPClient(srv.Client()))
}

func strPtr(s string) *string { return &s }

func TestBusinessClient_ListBusinesses(t *testing.T) {
	svc := newFakeBusinessService()
	c := setupTestServer(t, svc)

	resp, err := c.ListBusinesses(context.Background(), dto.ListBusinessesRequest{
		Status: strPtr("active"),
		Search: strPtr("paws & claws"),
		Limit:  10,
		Offset: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Businesses, 2)
	assert.Equal(t, "Happy Paws Grooming", resp.Businesses[0].Name)

	got := svc.lastList
	require.NotNil(t, got.Status)
	assert.Equal(t, "active", *got.Status)
	require.NotNil(t, got.Search)
	assert.Equal(t, "paws & claws", *got.Search)
	assert.Nil(t, got.Plan)
	assert.Nil(t, got.BillingStatus)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 20, got.Offset)
}

func TestBusinessClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		run      func(c *BusinessClient) error
		listErr  error
		wantType errors.ErrorType
	}{
		{
			name: "invalid window",
			run: func(c *BusinessClient) error {
				_, err := c.ListBusinesses(context.Background(), dto.ListBusinessesRequest{Limit: 0})
				return err
			},
			wantType: errors.ErrorTypeValidation,
		},
		{
			name: "storage unavailable",
			run: func(c *BusinessClient) error {
				_, err := c.ListBusinesses(context.Background(), dto.ListBusinessesRequest{Limit: 20})
				return err
			},
			listErr:  errors.NewStorageError("Storage temporarily unavailable", context.DeadlineExceeded),
			wantType: errors.ErrorTypeStorage,
		},
		{
			name: "unknown business",
			run: func(c *BusinessClient) error {
				_, err := c.UpdateBusinessStatus(context.Background(), 99, "active")
				return err
			},
			wantType: errors.ErrorTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeBusinessService()
			svc.listErr = tt.listErr
			c := setupTestServer(t, svc)

			err := tt.run(c)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
		})
	}
}

func TestBusinessClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewBusinessClient(srv.URL)
	_, err := c.ListBusinesses(context.Background(), dto.ListBusinessesRequest{Limit: 20})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestBusinessClient_DrivesAdminTable(t *testing.T) {
	svc := newFakeBusinessService()
	c := setupTestServer(t, svc)

	table := admintable.NewController(c, c, logger.NewNopLogger())
	defer table.Close()

	table.Refresh()
	table.Wait()
	require.Len(t, table.State().Items, 2)

	require.NoError(t, table.ChangeStatus(context.Background(), 2, "active"))
	table.Wait()
	state := table.State()
	require.NoError(t, state.LastError)
	assert.Equal(t, "active", state.Items[1].Status)

	err := table.ChangeStatus(context.Background(), 42, "suspended")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "active", table.State().Items[0].Status)
}
