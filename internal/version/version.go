// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Entry form with spectral class and magnitude input, list view
// 0.2.0 - Grid lines, name labels, environment configuration
// 0.1.0 - Initial release: HR diagram view, headless table and plot modes
