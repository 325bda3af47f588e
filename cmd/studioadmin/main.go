// @title Piano Studio Admin API
// @version 1.0
// @description Reservations, coupons, deposits and SMS templates for a piano practice studio.
// @BasePath /
package main

import (
	"os"

	_ "pianostudio/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
