// Command notemapgen writes test.notemap, a drum notemap that shifts
// device notes 12-127 down an octave onto GM notes 0-115.
package main

import (
	"fmt"
	"os"

	"go-notemap/notemap"
)

func main() {
	if err := notemap.WriteTestFile(notemap.TestFileName); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
