package crm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLead() Lead {
	return Lead{
		CallID:     "call-1",
		Track:      "personal_injury",
		Fields:     map[string]string{"name": "John Smith"},
		CapturedAt: time.Now(),
	}
}

func TestNotifier_Disabled(t *testing.T) {
	n := NewNotifier("")
	assert.False(t, n.Enabled())
	assert.NoError(t, n.Deliver(testLead()))
	n.DeliverAsync(testLead()) // must not panic
}

func TestNotifier_Deliver(t *testing.T) {
	var payload atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lead Lead
		_ = json.NewDecoder(r.Body).Decode(&lead)
		payload.Store(lead)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL)
	require.True(t, n.Enabled())
	require.NoError(t, n.Deliver(testLead()))

	lead := payload.Load().(Lead)
	assert.Equal(t, "call-1", lead.CallID)
	assert.Equal(t, "John Smith", lead.Fields["name"])
}

func TestNotifier_RetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL)
	require.NoError(t, n.Deliver(testLead()))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(2))
}

func TestNotifier_ClientErrorIsPermanent(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL)
	assert.Error(t, n.Deliver(testLead()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
