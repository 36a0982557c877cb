package styles

// Status icons used in CLI output.
var (
	IconPass = "✔"
	IconFail = "✘"
	IconWarn = "●"
)
