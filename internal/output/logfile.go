package output

import (
	"os"
)

// GetLogFilePath returns the path of the rotating log file, or "" when file
// logging is disabled. File logging is opt-in through GBDEV_LOG_FILE.
func GetLogFilePath() string {
	return os.Getenv("GBDEV_LOG_FILE")
}
