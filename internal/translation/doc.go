// Package translation provides English to Spanish translation with a
// layered fallback: the credential-free Google translation endpoint first,
// then the configured AI backend, and finally the untranslated input. It
// never fails; at worst the caller gets the original text back.
package translation
