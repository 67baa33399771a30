// Package config handles the settings file for unii.
//
// Settings are layered: built-in defaults, then the TOML settings file, then
// UNII_* environment variables. The result is a plain Settings value that is
// loaded once at process start and handed to everything that needs a path.
//
// # Environment Variables
//
//   - UNII_PATH: root storage directory (default: ~/unii)
//   - UNII_COURSE_CODE_PATTERN: regular expression course codes must match
//
// # Settings File
//
// The default location is $XDG_CONFIG_HOME/unii/settings.toml. When it does not
// exist, OpenOrCreate writes the defaults there:
//
//	path = "~/unii"
//	# course-code-pattern = "^[A-Z]{4}[0-9]{4}$"
package config
