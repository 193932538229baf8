// Command hash-password prints the bcrypt hash to set as OWNER_PASSWORD_HASH.
//
// The password is read from the first line of standard input so it does not
// end up in shell history:
//
//	hash-password < password.txt
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mmynk/jobledger/internal/auth"
)

func main() {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(os.Stderr, "read password:", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
