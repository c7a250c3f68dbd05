// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"authelia.com/provider/authz"
)

// File is the declarative configuration of tenants and their clients.
type File struct {
	Tenants []FileTenant `yaml:"tenants"`
}

// FileTenant is the configuration of a single tenant.
type FileTenant struct {
	Server  authz.ServerConfiguration   `yaml:"server"`
	Clients []authz.ClientConfiguration `yaml:"clients"`
}

// LoadFile reads the YAML configuration at path into a new MemoryStore.
func LoadFile(path string) (*MemoryStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open configuration file '%s'", path)
	}

	defer file.Close()

	return Load(file)
}

// Load reads a YAML configuration from r into a new MemoryStore. Clients inherit the tenant they are declared under.
func Load(r io.Reader) (*MemoryStore, error) {
	var config File

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	store := NewMemoryStore()

	for i := range config.Tenants {
		tenant := &config.Tenants[i]

		if tenant.Server.TenantID == "" {
			return nil, errors.Errorf("tenant %d has no tenant_id", i)
		}

		store.SetServerConfiguration(&tenant.Server)

		for j := range tenant.Clients {
			client := &tenant.Clients[j]

			if client.ClientID == "" {
				return nil, errors.Errorf("client %d of tenant '%s' has no client_id", j, tenant.Server.TenantID)
			}

			client.TenantID = tenant.Server.TenantID

			store.SetClientConfiguration(client)
		}
	}

	return store, nil
}
