// Package git retrieves source repositories for analysis. It performs
// shallow single-branch clones into caller-owned workspace directories and
// guarantees a companion cleanup operation for every checkout.
//
// URL validation happens here, before any network work: only http(s) URLs
// pointing at a recognized public forge with an owner/repo path shape are
// accepted.
package git
