package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Hijri Picker"
	AppID             = "io.github.helmy2.hijri-picker"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	TermLogFileName   = "term.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagLocale      = "locale"
	FlagYearMin     = "year-min"
	FlagYearMax     = "year-max"
	FlagLeapPattern = "leap-pattern"
	FlagServe       = "serve"
	FlagPort        = "port"

	FlagDescVersion     = "Show application version and exit"
	FlagDescDebug       = "Enable debug logging"
	FlagDescLocale      = "Locale used for names and numerals (e.g. en, ar)"
	FlagDescYearMin     = "First year offered by the year grid (0 = displayed year - 50)"
	FlagDescYearMax     = "Last year offered by the year grid (0 = displayed year + 50)"
	FlagDescLeapPattern = "Use the tabular calendar with leap-year pattern 16 or 15 (0 = Umm al-Qura)"
	FlagDescServe       = "Serve the Hijri day-label feed on localhost"
	FlagDescPort        = "Port of the local feed server"

	MsgVersionOutput = "%s version %s (%s/%s)\n"

	LeapPatternUmmAlQura = 0
	LeapPatternFlag15    = 15
	LeapPatternFlag16    = 16
)

// -----------------------------------------------------------------------------
// Calendar & Grid
// -----------------------------------------------------------------------------

const (
	MonthsPerYear = 12
	DaysPerWeek   = 7

	// Supported range of the tabular provider.
	MinHijriYear = 1
	MaxHijriYear = 9999

	// Years covered by the Umm al-Qura lunation table (1937-03-14 to 2077-11-16).
	UmmAlQuraMinYear = 1356
	UmmAlQuraMaxYear = 1500

	// GridRows x GridColumns cells are always emitted for a month.
	GridRows    = 6
	GridColumns = DaysPerWeek
	GridCells   = GridRows * GridColumns

	// DefaultYearSpan is used on both sides of the displayed year when no range is configured.
	DefaultYearSpan = 50

	// GridCacheSize bounds the number of memoised month grids.
	GridCacheSize = 24

	YearGridColumns     = 3
	YearGridVisibleRows = 6
)

// -----------------------------------------------------------------------------
// Formats & Patterns
// -----------------------------------------------------------------------------

const (
	FormatInvalidDate = "%s: %04d-%02d-%02d (%s)"
	FormatDateString  = "HijriDate(%04d-%02d-%02d)"
	FormatYearMonth   = "%04d-%02d"
	FormatTwoDigits   = "%02d"

	// Date patterns understood by format.Formatter.FormatDate.
	PatternHeadlineArabic = "d MMMM"
	PatternHeadline       = "E, MMM d"
	PatternMonthYear      = "MMMM yyyy"
	PatternFeedSummary    = "d MMMM yyyy"
	PatternLogDate        = "yyyy-MM-dd"

	ReasonMonthRange = "month out of range"
	ReasonYearRange  = "year outside supported range"
	ReasonDayRange   = "day not in month"
	ReasonTableRange = "day outside the Umm al-Qura table"
)

// -----------------------------------------------------------------------------
// Localization
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	LangArabic      = "ar"

	LocalesDir       = "locales"
	LocaleFilePrefix = "active."
	LocaleFileExt    = ".json"
	LocaleFormatJSON = "json"
)

// Translation key formats. Months are 1-based, weekdays use WeekdayKeySuffixes.
const (
	FormatTKeyMonth         = "month_%d"
	FormatTKeyMonthShort    = "month_short_%d"
	FormatTKeyWeekdayNarrow = "weekday_narrow_%s"
	FormatTKeyWeekdayShort  = "weekday_short_%s"
	FormatTKeyWeekdayLong   = "weekday_long_%s"
)

// WeekdayKeySuffixes lists weekday key suffixes Sunday-first, the order locales are stored in.
var WeekdayKeySuffixes = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Translation keys for picker and application strings.
const (
	TKeyTitle           = "picker_title"
	TKeyHeadlineDefault = "picker_headline_default"
	TKeyNextMonth       = "picker_next_month"
	TKeyPreviousMonth   = "picker_previous_month"
	TKeyChangeYear      = "picker_change_year"
	TKeyConfirm         = "picker_confirm"
	TKeyDismiss         = "picker_dismiss"
	TKeyWinTitle        = "win_title"
	TKeyOpenPicker      = "app_open_picker"
	TKeyNoDate          = "app_no_date"
	TKeyLblLanguage     = "lbl_language"
	TKeyFeedCalName     = "feed_calendar_name"
)

// -----------------------------------------------------------------------------
// Fallbacks (used when a message cannot be resolved)
// -----------------------------------------------------------------------------

var (
	FallbackMonthNames = []string{
		"Muharram", "Safar", "Rabiʻ I", "Rabiʻ II", "Jumada I", "Jumada II",
		"Rajab", "Shaʻban", "Ramadan", "Shawwal", "Dhuʻl-Qiʻdah", "Dhuʻl-Hijjah",
	}
	FallbackMonthShortNames = []string{
		"Muh.", "Saf.", "Rab. I", "Rab. II", "Jum. I", "Jum. II",
		"Raj.", "Sha.", "Ram.", "Shaw.", "Dhuʻl-Q.", "Dhuʻl-H.",
	}
	// Weekday fallbacks are Sunday-first like WeekdayKeySuffixes.
	FallbackWeekdayNarrow = []string{"S", "M", "T", "W", "T", "F", "S"}
	FallbackWeekdayShort  = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	FallbackWeekdayLong   = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

const (
	FallbackTitle           = "Select date"
	FallbackHeadlineDefault = "Select a date"
	FallbackNextMonth       = "Next month"
	FallbackPreviousMonth   = "Previous month"
	FallbackChangeYear      = "Change year"
	FallbackConfirm         = "OK"
	FallbackDismiss         = "Cancel"
	FallbackWinTitle        = AppName
	FallbackOpenPicker      = "Open picker"
	FallbackNoDate          = "No date selected"
	FallbackLanguage        = "Language"
	FallbackFeedCalName     = "Hijri Calendar"
)

// -----------------------------------------------------------------------------
// iCalendar Feed
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Hijri Picker//Feed//EN"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "hijri-picker"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
	PropCategories = "CATEGORIES"

	CategoryHijri = "HIJRI"

	// Months of the feed window around the current Hijri month.
	FeedMonthsBefore = 1
	FeedMonthsAfter  = 2

	FeedRefreshInterval = 1 * time.Hour
	DefaultICalRefresh  = 12 * time.Hour

	// FormatFeedUID expects year, month, day and domain.
	FormatFeedUID = "%04d%02d%02d@%s"

	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	DefaultPort        = "18081"
	MinPort            = 1
	MaxPort            = 65535
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	AddrSeparator      = ":"

	RouteFeed   = "/hijri.ics"
	RouteMonth  = "/api/month/{year}/{month}"
	PathYear    = "year"
	PathMonth   = "month"
	QueryLocale = "locale"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderContentLanguage = "Content-Language"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate      = "invalid hijri date"
	ErrInvalidYearMonth = "invalid year/month"
	ErrInvalidYearRange = "invalid year range"
	ErrNowOutOfRange    = "current day is outside the calendar range"
	ErrGridBuild        = "failed to build month grid"
	ErrYearSelect       = "failed to select year"
	ErrLocaleParse      = "unable to parse locale"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrNoLocales        = "no locale files were loaded"
	ErrFormatFallback   = "message unavailable, using fallback"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrFeedGenerate     = "failed to generate feed"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrWriteResp        = "failed to write response body"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrFormatterInit    = "failed to initialize formatter"
	ErrTermFailed       = "terminal program failed"
	ErrLeapPattern      = "leap pattern must be 15 or 16"
	ErrYearRangeHalf    = "year-min and year-max must be set together"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgBadMonth     = "Invalid year or month"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgStateCreated  = "Picker state created"
	MsgDaySelected   = "Day selected"
	MsgYearSelected  = "Year selected"
	MsgModeToggled   = "Picker mode toggled"
	MsgMonthChanged  = "Displayed month changed"
	MsgDayClamped    = "Selected day clamped to month length"
	MsgGridCacheHit  = "Month grid served from cache"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgFeedStarted   = "Feed generation started"
	MsgGenSuccess    = "Feed generation successful"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Feed cache updated"
	MsgPickerOpened  = "Opening picker dialog"
	MsgDateConfirmed = "Date confirmed"
	MsgPickerClosed  = "Picker dismissed"
	MsgLocaleChanged = "Locale changed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyFile      = "file"
	LogKeyValue     = "value"
	LogKeyYear      = "year"
	LogKeyMonth     = "month"
	LogKeyDay       = "day"
	LogKeyDate      = "date"
	LogKeyMode      = "mode"
	LogKeyEpochDay  = "epoch_day"
	LogKeyPort      = "port"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyEvents    = "events"
	LogKeyDuration  = "duration_ms"
	LogKeyInterval  = "interval"
	LogKeyCount     = "count"
	LogKeyFrom      = "from"
	LogKeyTo        = "to"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompCalendar = "calendar"
	CompPicker   = "picker"
	CompFormat   = "format"
	CompI18n     = "i18n"
	CompFeed     = "feed"
	CompServer   = "server"
	CompWorker   = "worker"
	CompUI       = "ui"
	CompTUI      = "tui"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 360
	MainWindowHeight = 200
	DayCellSize      = 40
	YearCellHeight   = 36
	PickerWidth      = 328
	YearGridHeight   = 300
	SymbolDropDown   = " ▾"
	SymbolDropUp     = " ▴"
)

// -----------------------------------------------------------------------------
// Terminal UI
// -----------------------------------------------------------------------------

const (
	TermCellWidth      = 4
	TermYearCellWidth  = 8
	TermYearInputLimit = 4
	TermNavPrev        = "‹"
	TermNavNext        = "›"
	TermYearPrompt     = "# "

	KeyLeft      = "left"
	KeyLeftAlt   = "h"
	KeyRight     = "right"
	KeyRightAlt  = "l"
	KeyUp        = "up"
	KeyUpAlt     = "k"
	KeyDown      = "down"
	KeyDownAlt   = "j"
	KeyNext      = "pgdown"
	KeyNextAlt   = "n"
	KeyPrev      = "pgup"
	KeyPrevAlt   = "p"
	KeyYear      = "y"
	KeySelect    = "enter"
	KeySelectAlt = " "
	KeyConfirm   = "c"
	KeyQuit      = "q"
	KeyEsc       = "esc"
	KeyCtrlC     = "ctrl+c"

	HelpKeyMove    = "←/↓/↑/→"
	HelpKeyPage    = "n/p"
	HelpKeySelect  = "enter"
	HelpDescMove   = "move"
	HelpDescPage   = "month"
	HelpDescYear   = "year"
	HelpDescSelect = "select"
	HelpDescQuit   = "quit"
)
