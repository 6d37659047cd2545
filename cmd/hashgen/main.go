// Command hashgen produces a password hash suitable for the APP_USERS
// credential list when hashed passwords are enabled.
//
// Usage:
//
//	hashgen -username admin -password 's3cret' -secret "$APP_SECRET"
//
// The output line can be pasted directly into APP_USERS.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/weisetech/booking-admin/internal/auth"
)

func main() {
	username := flag.String("username", "", "username the hash belongs to")
	password := flag.String("password", "", "plaintext password to hash")
	secret := flag.String("secret", "", "application secret mixed into the hash")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "hashgen: -username and -password are required")
		flag.Usage()
		os.Exit(2)
	}

	hash, err := auth.HashPassword(*password, *secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashgen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s:%s\n", *username, hash)
}
