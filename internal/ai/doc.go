// Package ai provides a minimal chat-completion client used for translation
// and summarization. Two backends are supported: OpenAI (preferred when an
// API key is configured) and Gemini.
package ai
