package httphandlers

import (
	"encoding/json"
	"fmt"
	"fwgate/internal/firewall"
	"fwgate/internal/service"
	"fwgate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testKey = "s3cret"

func newTestServer(t *testing.T) (*httptest.Server, *firewall.MemoryStore) {
	t.Helper()
	store := firewall.NewMemoryStore()
	handle := firewall.NewPolicyHandle(func() (firewall.PolicyStore, error) { return store, nil })
	control := service.NewControl(firewall.NewApplier(handle, zap.NewNop()), zap.NewNop())

	srv := httptest.NewServer(Routes(NewApiHandler(control, testKey, zap.NewNop())))
	t.Cleanup(srv.Close)
	return srv, store
}

func do(t *testing.T, srv *httptest.Server, method, path, key, body string) (int, response) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if key != "" {
		req.Header.Set(authorizationHeader, key)
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var r response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&r))
	assert.NotEmpty(t, res.Header.Get(requestIDHeader))
	return res.StatusCode, r
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	code, r := do(t, srv, http.MethodGet, "/v1/h", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, r.Error)
}

func TestAuthentication(t *testing.T) {
	srv, store := newTestServer(t)

	code, r := do(t, srv, http.MethodPost, "/v1/ip/block", "", `{"remote_address":"8.8.8.4"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.True(t, r.Error)

	code, _ = do(t, srv, http.MethodPost, "/v1/ip/block", "wrong", `{"remote_address":"8.8.8.4"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Empty(t, store.Rules())
}

func TestIntents(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantCode   int
		wantStatus types.Status
		wantRules  int
	}{
		{"block ip", "/v1/ip/block", `{"action":"block","remote_address":"8.8.8.4"}`, http.StatusOK, types.StatusOK, 1},
		{"allow ip", "/v1/ip/allow", `{"remote_address":"2001:db8::1"}`, http.StatusOK, types.StatusOK, 1},
		{"block port", "/v1/port/block", `{"remote_address":"8.8.8.4","port":80}`, http.StatusOK, types.StatusOK, 1},
		{"allow port", "/v1/port/allow", `{"remote_address":"8.8.8.4","port":443}`, http.StatusOK, types.StatusOK, 1},
		{"no target", "/v1/ip/block", `{}`, http.StatusBadRequest, types.StatusValidationError, 0},
		{"mismatched action", "/v1/port/allow", `{"action":"block","remote_address":"8.8.8.4","port":443}`, http.StatusBadRequest, types.StatusValidationError, 0},
		{"port above 65535", "/v1/port/block", `{"remote_address":"8.8.8.4","port":70000}`, http.StatusBadRequest, types.StatusValidationError, 0},
		{"negative port", "/v1/port/allow", `{"remote_address":"8.8.8.4","port":-80}`, http.StatusBadRequest, types.StatusValidationError, 0},
		{"port of the wrong type", "/v1/port/block", `{"remote_address":"8.8.8.4","port":"80"}`, http.StatusBadRequest, types.StatusValidationError, 0},
		{"malformed body", "/v1/ip/block", `{`, http.StatusBadRequest, types.StatusValidationError, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := newTestServer(t)
			code, r := do(t, srv, http.MethodPost, tt.path, testKey, tt.body)
			assert.Equal(t, tt.wantCode, code)

			data, ok := r.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, string(tt.wantStatus), data["status"])
			assert.Len(t, store.Rules(), tt.wantRules)
		})
	}
}

func TestIntents_StoreFailures(t *testing.T) {
	srv, store := newTestServer(t)

	store.FailMutations(fmt.Errorf("%w: operation not permitted", firewall.ErrPermissionDenied))
	code, _ := do(t, srv, http.MethodPost, "/v1/ip/block", testKey, `{"remote_address":"8.8.8.4"}`)
	assert.Equal(t, http.StatusForbidden, code)

	store.FailMutations(fmt.Errorf("netlink: broken pipe"))
	code, r := do(t, srv, http.MethodPost, "/v1/ip/block", testKey, `{"remote_address":"8.8.8.4"}`)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.True(t, r.Error)
}

func TestListRulesAndPortStatus(t *testing.T) {
	srv, store := newTestServer(t)
	require.NoError(t, store.OpenPort(types.OpenPort{Port: 8080, Protocol: types.ProtocolTCP, Name: "web"}))

	code, _ := do(t, srv, http.MethodPost, "/v1/ip/block", testKey, `{"remote_address":"8.8.8.4"}`)
	require.Equal(t, http.StatusOK, code)

	code, r := do(t, srv, http.MethodGet, "/v1/rules", testKey, "")
	assert.Equal(t, http.StatusOK, code)
	data := r.Data.(map[string]interface{})
	assert.Len(t, data["rules"], 2)

	code, r = do(t, srv, http.MethodGet, "/v1/ports/8080", testKey, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, r.Data.(map[string]interface{})["open"])

	for _, port := range []string{"http", "0", "65536"} {
		code, r = do(t, srv, http.MethodGet, "/v1/ports/"+port, testKey, "")
		assert.Equal(t, http.StatusBadRequest, code, port)
		data, ok := r.Data.(map[string]interface{})
		require.True(t, ok, port)
		assert.Equal(t, string(types.StatusValidationError), data["status"], port)
	}
}
