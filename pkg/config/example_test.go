package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/rsr/pkg/config"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "rsr-config")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, ".rsr.yaml")
	configYAML := "input: '\\.md$'\nsearch: TODO\nexclude: [node_modules]\n"
	if err := os.WriteFile(configPath, []byte(configYAML), 0o644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(context.Background(), configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Println(cfg)
	fmt.Println(cfg.Exclude)

	// Output:
	// .: input="\\.md$" output=- search="TODO" replace=-
	// [node_modules]
}
