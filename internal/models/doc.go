// Package models provides functionality for listing the OpenAI chat models
// available to the configured API key, so users can pick a model for
// translation and summarization.
package models
