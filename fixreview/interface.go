package fixreview

import (
	"github.com/tab1k/trucking-desk-mobile/cli"
	"github.com/tab1k/trucking-desk-mobile/model"
)

// Config for using fixreview as a library.
type Config struct {
	// Root is the trucking_desk project directory. Empty means the current
	// working directory.
	Root string
}

// Apply writes the fixed review handler into the project at config.Root.
func Apply(config Config) (model.Summary, error) {
	return New(&cli.Config{Root: config.Root}, nil).Execute()
}
