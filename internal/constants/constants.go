package constants

// Centralized constants for routes, env keys, storage keys and narration
// strings shared by the client and the development server.
const (
	// Environment variable keys
	EnvConfigPath = "ROGUEMON_CONFIG"
	EnvDBPath     = "ROGUEMON_DB"
	EnvServerURL  = "ROGUEMON_SERVER"
	EnvLogFile    = "ROGUEMON_LOG"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the battle service and consumed by the client.
const (
	RouteAPIPrefix     = "/api"
	RouteBattleStart   = "/battle/start"
	RouteBattleTurn    = "/battle/turn"
	RouteBattleCapture = "/battle/capture"
	RouteStarters      = "/starters"
	RouteHealth        = "/health"
	RouteVersion       = "/version"
)

// Storage keys. PlayerName lives in the persistent scope; the starter key
// and roster are session-scoped.
const (
	StoreKeyPlayerName    = "player_name"
	StoreKeyStarter       = "starter_key"
	StoreKeyRoster        = "roster"
	StoreKeyRosterArchive = "roster_archive"
)

// Narration lines synthesized on the client. Faint and capture narration
// is ephemeral: it is shown once and never written to the turn history.
const (
	MsgStartFailed   = "Failed to start battle."
	MsgTurnFailed    = "The move failed to resolve. Try again."
	MsgCaptureFailed = "The capture attempt failed."
	MsgSkipCapture   = "You decided not to catch it."

	FaintedFmt       = "%s fainted!"
	CapturePromptFmt = "Do you want to try to catch %s?"
	CaptureBrokeFree = "Oh no! The RogueMon broke free!"

	IdlePrompt = "What will you do?"
)

// Server-side error messages.
const (
	ErrInvalidRequest     = "Invalid request"
	ErrBattleNotFound     = "Battle not found"
	ErrTurnInProgress     = "Turn in progress"
	ErrCaptureWinOnly     = "Capture allowed only after a win."
	ErrCaptureResolved    = "Capture already resolved."
	ErrUnknownStarter     = "Unknown starter"
	ErrUnknownMove        = "Unknown move"
	ErrFailedEncodeState  = "Failed to encode battle state"
	ErrFailedCreateBattle = "Failed to create battle"
)

// Common JSON response keys.
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Logging field names.
const (
	LogFieldBattleID = "battle_id"
	LogFieldPlayer   = "player"
	LogFieldEnemy    = "enemy"
	LogFieldMove     = "move"
	LogFieldTurn     = "turn"
	LogFieldAddr     = "addr"
	LogFieldURL      = "url"
	LogFieldKey      = "key"
)
