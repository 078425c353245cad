// Command site-setup prepares the database for the site service.
package main

import "os"

func main() {
	if err := newRootCmd(openSQLStore).Execute(); err != nil {
		os.Exit(1)
	}
}
