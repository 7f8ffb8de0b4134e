// Package diag defines the diagnostic vocabulary of the gencat front end:
// structured records tied to source spans, the bag that accumulates them,
// and the KnownError kind used for failures that have already been explained
// to the user.
package diag
