// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Partial configs are legal
// at this stage; required values are enforced on [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 || !isValidBaseURL(cfg.Adapter.BaseURL) {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.Currency) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isValidBaseURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
