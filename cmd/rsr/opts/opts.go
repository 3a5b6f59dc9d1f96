package opts

import (
	"os"

	"github.com/walteh/rsr/pkg/config"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	// Stdin answers confirmation prompts
	Stdin *os.File
}
