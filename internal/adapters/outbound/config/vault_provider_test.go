package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretResponse = `{
	"data": {
		"data": {
			"LLM_MODEL_HOST": "http://model-runner:12434",
			"DB_MAX_CONNS": 10
		},
		"metadata": {
			"created_time": "2026-01-24T12:00:00Z",
			"version": 1
		}
	}
}`

func newVaultServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var reads atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/aiassist" || r.Header.Get("X-Vault-Token") != "root" {
			http.NotFound(w, r)
			return
		}
		reads.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &reads
}

func TestNewVaultProvider(t *testing.T) {
	tests := map[string]struct {
		server, token, mountPath, secretPath string
		expectedErr                          string
	}{
		"valid": {
			server: "http://localhost:8200", token: "root", mountPath: "secret", secretPath: "aiassist",
		},
		"missing-server": {
			token: "root", mountPath: "secret", secretPath: "aiassist",
			expectedErr: "server is required",
		},
		"missing-token": {
			server: "http://localhost:8200", mountPath: "secret", secretPath: "aiassist",
			expectedErr: "token is required",
		},
		"missing-mount-path": {
			server: "http://localhost:8200", token: "root", secretPath: "aiassist",
			expectedErr: "mountPath is required",
		},
		"missing-secret-path": {
			server: "http://localhost:8200", token: "root", mountPath: "secret",
			expectedErr: "secretPath is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mountPath, tt.secretPath)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	tests := map[string]struct {
		key           string
		expectedValue string
		expectErr     bool
	}{
		"string-value": {
			key:           "LLM_MODEL_HOST",
			expectedValue: "http://model-runner:12434",
		},
		"missing-key": {
			key:       "DB_HOST",
			expectErr: true,
		},
		"non-string-value": {
			key:       "DB_MAX_CONNS",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, _ := newVaultServer(t, http.StatusOK, secretResponse)
			vp, err := NewVaultProvider(server.URL, "root", "secret", "aiassist")
			require.NoError(t, err)

			value, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestVaultProvider_Get_ReadsSecretOnce(t *testing.T) {
	server, reads := newVaultServer(t, http.StatusOK, secretResponse)
	vp, err := NewVaultProvider(server.URL, "root", "secret", "aiassist")
	require.NoError(t, err)

	for range 3 {
		_, err := vp.Get(context.Background(), "LLM_MODEL_HOST")
		require.NoError(t, err)
	}
	_, _ = vp.Get(context.Background(), "DB_HOST")

	assert.Equal(t, int32(1), reads.Load())
}

func TestVaultProvider_Get_ServerError(t *testing.T) {
	server, reads := newVaultServer(t, http.StatusInternalServerError, `{"errors":["sealed"]}`)
	vp, err := NewVaultProvider(server.URL, "root", "secret", "aiassist")
	require.NoError(t, err)

	_, err = vp.Get(context.Background(), "LLM_MODEL_HOST")
	assert.Error(t, err)
	firstReads := reads.Load()

	_, err = vp.Get(context.Background(), "LLM_MODEL_HOST")
	assert.Error(t, err)
	assert.Greater(t, reads.Load(), firstReads)
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		init      InitVaultProvider
		expectErr bool
	}{
		"success": {
			init: InitVaultProvider{Server: "http://localhost:8200", Token: "root", MountPath: "secret", SecretPath: "aiassist"},
		},
		"missing-token": {
			init:      InitVaultProvider{Server: "http://localhost:8200", MountPath: "secret", SecretPath: "aiassist"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
