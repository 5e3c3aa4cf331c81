// verdant is the command line front end of the plant disease predictor.
//
// Usage:
//
//	verdant predict --plant <name> --leaf-color <0|1|2> [--leaf-spot] [--leaf-wilt] [--stem-rot] [--growth-stunted] [--dry-run] [--json]
//	verdant history [--plant <name>] [--markdown]
//	verdant summary [--plant <name>] [--markdown]
//	verdant export [--plant <name>] [-o <path>]
//	verdant archive [--plant <name>]
//	verdant categories
//
// Configuration is read from config.toml in the working directory, the
// config.<VERDANT_ENV>.toml overlay, and VERDANT_* environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
