package version

// AppVersion is the current xtaskctl release version.
const AppVersion = "0.3.0"
