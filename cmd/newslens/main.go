// newslens serves sentiment analysis, summarization and an analyzed news feed.
package main

import (
	"os"

	"github.com/spacesedan/newslens/cmd/newslens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
