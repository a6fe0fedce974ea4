package service

// Paths are variables to allow testing with different locations.
var (
	dbPath     = "data/badger"
	configPath = "config.yaml"
	backupDir  = "data/backups"
)
