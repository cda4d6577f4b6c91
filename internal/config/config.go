// Package config loads the analytics policy from disk.
//
// A deployment retunes scoring rates and threshold ladders by dropping a
// policy.json into the data directory. Fields left out of the file keep
// their defaults; list-valued fields (levels, badges, workload tiers)
// replace the default table wholesale when present.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"pulse/internal/analytics"
)

var validate = validator.New()

// PolicyPath returns the policy file location inside the data directory.
func PolicyPath(dataDir string) string {
	return filepath.Join(dataDir, "policy.json")
}

// LoadPolicy reads the policy file at path, overlaying it onto the
// default policy. A missing file is not an error; the defaults apply.
// The merged policy is validated before it is handed to the engine so a
// bad override fails at startup, not mid-request.
func LoadPolicy(path string) (analytics.Policy, error) {
	policy := analytics.DefaultPolicy()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return policy, nil
	}
	if err != nil {
		return analytics.Policy{}, fmt.Errorf("config: read policy: %w", err)
	}

	if err := json.Unmarshal(data, &policy); err != nil {
		return analytics.Policy{}, fmt.Errorf("config: parse policy: %w", err)
	}
	if err := validate.Struct(policy); err != nil {
		return analytics.Policy{}, fmt.Errorf("config: invalid policy: %w", err)
	}
	return policy, nil
}
