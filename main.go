package main

import (
	"context"
	"log"
	"os"
)

// devlog appends its arguments, or each line piped on stdin, to the devlog
// output. Lines matching the exclusion config are dropped.
//
// Usage:
//
//	devlog "worker started"
//	make test 2>&1 | devlog
//	devlog check "GET /healthz"
//	devlog exclusions
func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
