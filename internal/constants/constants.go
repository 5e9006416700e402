package constants

const (
	AppName         = "sereniflow"
	DefaultDataPath = "~/.config/sereniflow/sereniflow.db"
	Version         = "v0.1.0"

	// DateFormat is the calendar-day key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage slot keys. These match the snapshot names the stores persist under
	// and must not change without a migration.
	WellnessStorageKey = "sereniflow-storage"
	DocumentStorageKey = "document-store"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "sereniflow-"

	// Insights window sizes in days
	TrendWindowWeek  = 7
	TrendWindowMonth = 30
)
