package service

import "postcard/app/config"

// dbPath overrides the configured badger path when set. Tests use it to
// point the db commands at a temporary directory.
var dbPath = ""

// badgerPath returns the badger directory the db commands work on: the
// override when set, otherwise BADGER_PATH as the server reads it.
func badgerPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.BadgerPath, nil
}
