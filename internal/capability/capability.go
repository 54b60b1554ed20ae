// Package capability models which optional backends are usable for the
// current run. The flags are computed once at startup and passed explicitly
// to the components that need them.
package capability

// Flags indicates which optional backends are available. A Flags value is
// immutable for the lifetime of a run.
type Flags struct {
	// DirectTranslation is true when the credential-free Google
	// translation backend may be used.
	DirectTranslation bool

	// AI is true when a chat-completion backend is configured.
	AI bool
}

// Detect computes the capability flags from the configured credentials.
// directDisabled turns off the direct translation backend regardless of
// anything else.
func Detect(openAIKey, geminiKey string, directDisabled bool) Flags {
	return Flags{
		DirectTranslation: !directDisabled,
		AI:                openAIKey != "" || geminiKey != "",
	}
}
