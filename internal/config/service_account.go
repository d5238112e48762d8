package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const defaultServiceAccountPath = "./serviceAccountKey.json"

// ServiceAccount holds the fields of a Firebase service-account key this service uses.
type ServiceAccount struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// LoadServiceAccount reads credentials from FIREBASE_SERVICE_ACCOUNT (inline JSON), else
// the file at FIREBASE_SERVICE_ACCOUNT_PATH, else ./serviceAccountKey.json.
func LoadServiceAccount() (*ServiceAccount, error) {
	if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT"); raw != "" {
		return parseServiceAccount([]byte(raw), "FIREBASE_SERVICE_ACCOUNT")
	}

	path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if path == "" {
		path = defaultServiceAccountPath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no firebase credentials: set FIREBASE_PROJECT_ID, FIREBASE_SERVICE_ACCOUNT or FIREBASE_SERVICE_ACCOUNT_PATH (%s not found)", path)
		}
		return nil, fmt.Errorf("read service account %s: %w", path, err)
	}
	return parseServiceAccount(raw, path)
}

func parseServiceAccount(raw []byte, source string) (*ServiceAccount, error) {
	var account ServiceAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("parse service account from %s: %w", source, err)
	}
	if account.ProjectID == "" {
		return nil, fmt.Errorf("service account from %s has no project_id", source)
	}
	return &account, nil
}
