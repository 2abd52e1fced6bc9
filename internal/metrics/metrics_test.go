package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandStarted(t *testing.T) {
	ok := testutil.ToFloat64(gatewayCalls.WithLabelValues("metrics_test", "success"))
	failed := testutil.ToFloat64(gatewayCalls.WithLabelValues("metrics_test", "error"))
	inflight := testutil.ToFloat64(commandsInFlight)

	done := CommandStarted("metrics_test")
	assert.Equal(t, inflight+1, testutil.ToFloat64(commandsInFlight))
	done(nil)
	assert.Equal(t, inflight, testutil.ToFloat64(commandsInFlight))

	CommandStarted("metrics_test")(errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(gatewayCalls.WithLabelValues("metrics_test", "success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(gatewayCalls.WithLabelValues("metrics_test", "error")))
}

func TestRecordMessage(t *testing.T) {
	before := testutil.ToFloat64(messagesDispatched.WithLabelValues("metrics_test_msg"))
	RecordMessage("metrics_test_msg")
	RecordMessage("metrics_test_msg")
	assert.Equal(t, before+2, testutil.ToFloat64(messagesDispatched.WithLabelValues("metrics_test_msg")))
}

func TestHandler(t *testing.T) {
	RecordMessage("handler_test_msg")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nearcounter_update_messages_total{msg="handler_test_msg"}`)
	assert.Contains(t, string(body), "go_goroutines")
}
