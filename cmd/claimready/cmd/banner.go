package cmd

import "fmt"

const banner = `
   _____ _       _           _____                _
  / ____| |     (_)         |  __ \              | |
 | |    | | __ _ _ _ __ ___ | |__) |___  __ _  __| |_   _
 | |    | |/ _` + "`" + ` | | '_ ` + "`" + ` _ \|  _  // _ \/ _` + "`" + ` |/ _` + "`" + ` | | | |
 | |____| | (_| | | | | | | | | \ \  __/ (_| | (_| | |_| |
  \_____|_|\__,_|_|_| |_| |_|_|  \_\___|\__,_|\__,_|\__, |
                                                     __/ |
                                                    |___/
`

func printBanner() {
	fmt.Printf("\x1b[34m%s\x1b[0m", banner)
	fmt.Printf("\x1b[32m  VA Claims Companion - Version %s\x1b[0m\n\n", Version)
}
