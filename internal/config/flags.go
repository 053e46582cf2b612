// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagBaseURL               = "base-url"
	FlagRequestTimeout        = "request-timeout"
	FlagCurrency              = "currency"
	FlagDisablePrivacyCommand = "no-privacy-command"
	FlagUnmasked              = "unmasked"
	FlagMaskBalances          = "mask-balances"
	FlagLogPath               = "log-path"
	FlagConfig                = "config"
)

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	--base-url             API host (e.g. https://openapi.investec.com)
//	--request-timeout      request timeout (e.g. "30s", "1m")
//	--currency             currency code shown with transaction amounts
//	--no-privacy-command   disable the private/pvt toggle
//	--unmasked             start with privacy mode off
//	--mask-balances        mask balances in privacy mode
//	--log-path             diagnostic log file
//	-c/--config            json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagBaseURL, "", "Open API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagCurrency, "", "Currency code shown with transaction amounts")
	fs.Bool(FlagDisablePrivacyCommand, false, "Disable the private/pvt command")
	fs.Bool(FlagUnmasked, false, "Start with privacy mode off")
	fs.Bool(FlagMaskBalances, false, "Mask balances while privacy mode is on")
	fs.String(FlagLogPath, "", "Log file path")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the values of the flags registered by [RegisterFlags].
// Flags that were not registered on fs produce an error.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}
	boolean := func(name string) bool {
		v, err := fs.GetBool(name)
		errs = append(errs, err)
		return v
	}

	cfg := &StructuredConfig{
		App: App{
			Currency:              str(FlagCurrency),
			DisablePrivacyCommand: boolean(FlagDisablePrivacyCommand),
			StartUnmasked:         boolean(FlagUnmasked),
			MaskBalances:          boolean(FlagMaskBalances),
		},
		Adapter: Adapter{
			BaseURL: str(FlagBaseURL),
		},
		Log:          Log{Path: str(FlagLogPath)},
		JSONFilePath: str(FlagConfig),
	}

	timeout, err := fs.GetDuration(FlagRequestTimeout)
	errs = append(errs, err)
	cfg.Adapter.RequestTimeout = timeout

	if err = errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}
