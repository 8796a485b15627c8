package agent

import (
	"context"
	"medibook-client/internal/app/config"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	remote := chi.NewRouter()
	remote.Get(constvars.RemotePathDoctorList, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"doctors": []models.Doctor{{ID: "doc1", Name: "Dr. Richard James"}},
		})
	})
	server := httptest.NewServer(remote)
	defer server.Close()

	bootstrap := &config.Bootstrap{
		Logger: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			Remote:   config.AppRemote{BaseUrl: server.URL, RequestTimeoutInSeconds: 5},
			Session:  config.AppSession{StorageDriver: constvars.SessionStorageDriverMemory, Namespace: "test"},
			Notifier: config.AppNotifier{FeedSize: 10},
			Roster:   config.AppRoster{RefreshCronSpec: "@every 1h"},
		},
		DriverConfig: &config.DriverConfig{},
	}

	a, err := New(context.Background(), bootstrap)
	require.NoError(t, err)
	assert.Len(t, a.Store.Doctors(), 1)
	assert.Equal(t, uint64(1), a.Store.RosterVersion())
	assert.Empty(t, a.Store.Token())
	require.NotNil(t, bootstrap.SessionClose)
	require.NotNil(t, bootstrap.RosterWorkerStop)

	view, err := a.Workflow.Open(context.Background(), "doc1", a.Generator.Now())
	require.NoError(t, err)
	assert.Len(t, view.Grid, 7)

	require.NoError(t, bootstrap.Shutdown(context.Background()))
}

func TestNewUnknownStorage(t *testing.T) {
	bootstrap := &config.Bootstrap{
		Logger: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			Session: config.AppSession{StorageDriver: "etcd"},
		},
		DriverConfig: &config.DriverConfig{},
	}

	_, err := New(context.Background(), bootstrap)
	assert.Error(t, err)
}
