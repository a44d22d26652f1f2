// Package gitignore fetches language-specific ignore templates and renders
// the final .gitignore content.
//
// A Fetcher issues exactly one GET per request to a template endpoint
// (gitignore.io by default) through an injectable HTTPDoer. The response body
// is used verbatim as the prefix of the ignore file; Render appends the fixed
// PersonalBlock. Transport failures and non-2xx statuses are returned as
// *errors.FetchError wrapping errors.ErrTemplateFetch; nothing is retried.
package gitignore
