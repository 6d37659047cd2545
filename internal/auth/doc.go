// Package auth implements credential handling for the booking-admin
// console: parsing the configuration-sourced credential list into a
// username→hash mapping and verifying plaintext candidates against salted
// Argon2id hashes in PHC string form.
//
// The credential set is rebuilt from configuration on every authentication
// check; nothing in this package persists state.
package auth
