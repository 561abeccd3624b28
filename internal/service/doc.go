// Package service implements the application's business operations:
// per-resource services that validate input, enforce the ownership
// policy, and delegate persistence to the store layer. Each operation
// is a plain function of (requester, parameters, payload) so the
// authorization and validation rules are testable without HTTP
// plumbing.
package service
