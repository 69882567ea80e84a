package ui

// Color accessors read the active theme on every call so that a theme switch
// (or NO_COLOR) takes effect immediately.

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorRed returns the theme's error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the theme's success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the theme's warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the theme's primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the theme's secondary color.
func ColorCyan() string { return GetCurrentTheme().Secondary }
