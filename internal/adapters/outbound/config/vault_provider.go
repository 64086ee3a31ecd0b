package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from one KV v2 secret of HashiCorp Vault.
// The secret is read once and served from memory afterwards.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cache      *secretCache
}

type secretCache struct {
	mu     sync.Mutex
	values map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "aiassist").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	for name, value := range map[string]string{
		"server":     server,
		"token":      token,
		"mountPath":  mountPath,
		"secretPath": secretPath,
	} {
		if value == "" {
			return VaultProvider{}, fmt.Errorf("%s is required", name)
		}
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cache:      &secretCache{},
	}, nil
}

// Get returns the value of key in the secret.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	values, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}
	return strValue, nil
}

// load reads the secret on first use. A failed read is retried on the next call.
func (vp VaultProvider) load(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()
	if vp.cache.values != nil {
		return vp.cache.values, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}
	vp.cache.values = secret.Data
	return secret.Data, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider composes the environment and Vault into the global config provider.
// Environment variables take precedence.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR"`
	Token      string `config:"VAULT_TOKEN"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"aiassist"`
}

// Initialize sets the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	return ctx, nil
}
