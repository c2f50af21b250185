// Package resource implements the categorized filesystem resource
// resolver: a closed FileCategory enum, each mapped to an ordered list
// of platform search paths under a visibility/ordering/access policy.
package resource

// FileCategory is the closed set of logical path classifications a
// caller resolves against.
type FileCategory int

const (
	Exec FileCategory = iota
	Library
	Fonts

	UserHome
	UserDesktop
	UserDownload
	UserDocuments
	UserMusic
	UserPictures
	UserVideos

	CommonData
	CommonConfig
	CommonState
	CommonCache
	CommonRuntime

	AppData
	AppConfig
	AppState
	AppCache
	AppRuntime

	Bundled

	// Custom marks a caller-supplied absolute path that never consults
	// the category table (resolved Open Question, see DESIGN.md).
	Custom

	// categoryCount is not itself a valid category; it sizes the table.
	categoryCount

	// Max is the sentinel DetectResourceCategory and
	// GetResourceCategoryByPrefix return on a failed lookup.
	Max = categoryCount
)

// String names a category for diagnostics.
func (c FileCategory) String() string {
	switch c {
	case Exec:
		return "Exec"
	case Library:
		return "Library"
	case Fonts:
		return "Fonts"
	case UserHome:
		return "UserHome"
	case UserDesktop:
		return "UserDesktop"
	case UserDownload:
		return "UserDownload"
	case UserDocuments:
		return "UserDocuments"
	case UserMusic:
		return "UserMusic"
	case UserPictures:
		return "UserPictures"
	case UserVideos:
		return "UserVideos"
	case CommonData:
		return "CommonData"
	case CommonConfig:
		return "CommonConfig"
	case CommonState:
		return "CommonState"
	case CommonCache:
		return "CommonCache"
	case CommonRuntime:
		return "CommonRuntime"
	case AppData:
		return "AppData"
	case AppConfig:
		return "AppConfig"
	case AppState:
		return "AppState"
	case AppCache:
		return "AppCache"
	case AppRuntime:
		return "AppRuntime"
	case Bundled:
		return "Bundled"
	case Custom:
		return "Custom"
	default:
		return "Invalid"
	}
}

// resourcePrefix returns the canonical "%CATEGORY%:" prefix used in
// serialised resource references.
func resourcePrefix(c FileCategory) string {
	switch c {
	case Exec:
		return "%EXEC%:"
	case Library:
		return "%LIBRARY%:"
	case Fonts:
		return "%FONTS%:"
	case UserHome:
		return "%USER_HOME%:"
	case UserDesktop:
		return "%USER_DESKTOP%:"
	case UserDownload:
		return "%USER_DOWNLOAD%:"
	case UserDocuments:
		return "%USER_DOCUMENTS%:"
	case UserMusic:
		return "%USER_MUSIC%:"
	case UserPictures:
		return "%USER_PICTURES%:"
	case UserVideos:
		return "%USER_VIDEOS%:"
	case CommonData:
		return "%COMMON_DATA%:"
	case CommonConfig:
		return "%COMMON_CONFIG%:"
	case CommonState:
		return "%COMMON_STATE%:"
	case CommonCache:
		return "%COMMON_CACHE%:"
	case CommonRuntime:
		return "%COMMON_RUNTIME%:"
	case AppData:
		return "%APP_DATA%:"
	case AppConfig:
		return "%APP_CONFIG%:"
	case AppState:
		return "%APP_STATE%:"
	case AppCache:
		return "%APP_CACHE%:"
	case AppRuntime:
		return "%APP_RUNTIME%:"
	case Bundled:
		return "%PLATFORM%:"
	default:
		return ""
	}
}
